package model

import (
	"time"

	"github.com/groupbuy/core/pkg/domain/types"
)

// User is an account registered through the bot frontend
type User struct {
	ID         types.UserID `json:"id"`
	TelegramID int64        `json:"telegram_id"`
	Username   string       `json:"username"`
	FirstName  string       `json:"first_name"`
	City       string       `json:"city"`
	CreatedAt  time.Time    `json:"created_at"`
}

// CreateUserRequest is the POST /api/users/ payload
type CreateUserRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	City       string `json:"city"`
}
