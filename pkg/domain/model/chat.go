package model

import (
	"time"

	"github.com/groupbuy/core/pkg/domain/types"
)

// Message is a chat message in a procurement's discussion thread
type Message struct {
	ID            string              `json:"id"` // UUID assigned at creation
	ProcurementID types.ProcurementID `json:"procurement_id"`
	UserID        types.UserID        `json:"user_id"`
	Text          string              `json:"text"`
	CreatedAt     time.Time           `json:"created_at"`
}

// PostMessageRequest is the POST /api/chat/procurements/{id}/messages/ payload
type PostMessageRequest struct {
	UserID types.UserID `json:"user_id"`
	Text   string       `json:"text"`
}
