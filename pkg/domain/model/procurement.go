package model

import (
	"time"

	"github.com/groupbuy/core/pkg/domain/types"
)

// ProcurementStatus represents the lifecycle state of a procurement
type ProcurementStatus string

const (
	ProcurementDraft     ProcurementStatus = "draft"
	ProcurementActive    ProcurementStatus = "active"
	ProcurementCompleted ProcurementStatus = "completed"
	ProcurementCancelled ProcurementStatus = "cancelled"
)

// Procurement is a group-buy campaign organized by a user
type Procurement struct {
	ID              types.ProcurementID `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	CategoryID      types.CategoryID    `json:"category_id"`
	OrganizerID     types.UserID        `json:"organizer_id"`
	City            string              `json:"city"`
	DeliveryAddress string              `json:"delivery_address"`
	TargetAmount    float64             `json:"target_amount"`
	StopAtAmount    float64             `json:"stop_at_amount"`
	CurrentAmount   float64             `json:"current_amount"`
	Unit            string              `json:"unit"`
	PricePerUnit    float64             `json:"price_per_unit"`
	Status          ProcurementStatus   `json:"status"`
	Deadline        time.Time           `json:"deadline"`
	PaymentDeadline time.Time           `json:"payment_deadline"`
	ImageURL        string              `json:"image_url"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ProcurementSummary is a procurement together with its active
// participant count, the shape returned by the read endpoints.
type ProcurementSummary struct {
	Procurement
	ParticipantCount int64 `json:"participant_count"`
}

// ProcurementFilter narrows procurement listings. Nil fields match everything.
type ProcurementFilter struct {
	Status      *string
	City        *string
	CategoryID  *types.CategoryID
	OrganizerID *types.UserID
}

// CreateProcurementRequest is the POST /api/procurements/ payload.
// Optional fields default server-side: unit to "units", status to "draft".
type CreateProcurementRequest struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	CategoryID      types.CategoryID   `json:"category_id"`
	OrganizerID     types.UserID       `json:"organizer_id"`
	City            string             `json:"city"`
	DeliveryAddress *string            `json:"delivery_address"`
	TargetAmount    float64            `json:"target_amount"`
	StopAtAmount    float64            `json:"stop_at_amount"`
	Unit            *string            `json:"unit"`
	PricePerUnit    float64            `json:"price_per_unit"`
	Status          *ProcurementStatus `json:"status"`
	Deadline        time.Time          `json:"deadline"`
	PaymentDeadline time.Time          `json:"payment_deadline"`
	ImageURL        *string            `json:"image_url"`
}

// Procurement materializes the request with server-side defaults applied
func (r *CreateProcurementRequest) Procurement() *Procurement {
	p := &Procurement{
		Title:           r.Title,
		Description:     r.Description,
		CategoryID:      r.CategoryID,
		OrganizerID:     r.OrganizerID,
		City:            r.City,
		TargetAmount:    r.TargetAmount,
		StopAtAmount:    r.StopAtAmount,
		Unit:            "units",
		PricePerUnit:    r.PricePerUnit,
		Status:          ProcurementDraft,
		Deadline:        r.Deadline,
		PaymentDeadline: r.PaymentDeadline,
	}
	if r.DeliveryAddress != nil {
		p.DeliveryAddress = *r.DeliveryAddress
	}
	if r.Unit != nil {
		p.Unit = *r.Unit
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	return p
}

// Participant is a user's membership in a procurement
type Participant struct {
	ID            types.ParticipantID `json:"id"`
	ProcurementID types.ProcurementID `json:"procurement_id"`
	UserID        types.UserID        `json:"user_id"`
	Quantity      float64             `json:"quantity"`
	Amount        float64             `json:"amount"`
	Notes         string              `json:"notes"`
	IsActive      bool                `json:"is_active"`
	JoinedAt      time.Time           `json:"joined_at"`
}

// JoinRequest is the POST /api/procurements/{id}/join/ payload.
// UserID is required; Quantity defaults to 1.
type JoinRequest struct {
	UserID   *types.UserID `json:"user_id"`
	Quantity *float64      `json:"quantity"`
	Amount   float64       `json:"amount"`
	Notes    *string       `json:"notes"`
}

// Category groups procurements for browsing
type Category struct {
	ID       types.CategoryID `json:"id"`
	Name     string           `json:"name"`
	IsActive bool             `json:"is_active"`
}
