package model

import (
	"time"

	"github.com/groupbuy/core/pkg/domain/types"
)

// PaymentStatus represents the settlement state of a payment record
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
)

// Payment records money received for a participation. This service only
// tracks payments; provider integration lives outside the core API.
type Payment struct {
	ID            string              `json:"id"` // UUID assigned at creation
	ParticipantID types.ParticipantID `json:"participant_id"`
	Amount        float64             `json:"amount"`
	Method        string              `json:"method"`
	Status        PaymentStatus       `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	ConfirmedAt   *time.Time          `json:"confirmed_at,omitempty"`
}

// CreatePaymentRequest is the POST /api/payments/ payload
type CreatePaymentRequest struct {
	ParticipantID types.ParticipantID `json:"participant_id"`
	Amount        float64             `json:"amount"`
	Method        string              `json:"method"`
}
