package interfaces

import (
	"context"

	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

// ProcurementRepository persists procurements, participants and categories.
// Lookups return model.ErrNotFound when no row matches.
type ProcurementRepository interface {
	List(ctx context.Context, filter *model.ProcurementFilter) ([]*model.Procurement, error)
	Get(ctx context.Context, id types.ProcurementID) (*model.Procurement, error)
	Create(ctx context.Context, p *model.Procurement) (*model.Procurement, error)

	// CountParticipants counts active participants of a procurement
	CountParticipants(ctx context.Context, id types.ProcurementID) (int64, error)

	// AddParticipant inserts a participation row. Returns
	// model.ErrAlreadyJoined when the user already participates.
	AddParticipant(ctx context.Context, p *model.Participant) (*model.Participant, error)

	// RecalculateAmount recomputes current_amount from active participants
	RecalculateAmount(ctx context.Context, id types.ProcurementID) error

	ListCategories(ctx context.Context) ([]*model.Category, error)
}

// UserRepository persists user accounts
type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)
}

// ChatRepository persists procurement discussion messages
type ChatRepository interface {
	ListMessages(ctx context.Context, procurementID types.ProcurementID) ([]*model.Message, error)
	CreateMessage(ctx context.Context, m *model.Message) (*model.Message, error)
}

// PaymentRepository persists payment records
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p *model.Payment) (*model.Payment, error)
	GetPayment(ctx context.Context, id string) (*model.Payment, error)
	ListPaymentsByParticipant(ctx context.Context, participantID types.ParticipantID) ([]*model.Payment, error)
}

// ProcurementCache caches procurement listings keyed by filter.
// A cache miss is (nil, nil); cache failures must not fail reads.
type ProcurementCache interface {
	GetList(ctx context.Context, filter *model.ProcurementFilter) ([]*model.ProcurementSummary, error)
	SetList(ctx context.Context, filter *model.ProcurementFilter, items []*model.ProcurementSummary) error
	Invalidate(ctx context.Context) error
}

// AdminResource describes one browsable table in the admin console
type AdminResource struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// AdminStore exposes raw resource browsing for the admin console.
// Only registered resource names are served; unknown names return
// model.ErrNotFound.
type AdminStore interface {
	Resources(ctx context.Context) ([]*AdminResource, error)
	Rows(ctx context.Context, resource string, limit, offset int) ([]map[string]any, error)
}
