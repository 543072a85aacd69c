package interfaces

import (
	"context"

	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

// ProcurementUseCase defines procurement operations exposed by the API
type ProcurementUseCase interface {
	List(ctx context.Context, filter *model.ProcurementFilter) ([]*model.ProcurementSummary, error)
	Create(ctx context.Context, req *model.CreateProcurementRequest) (*model.ProcurementSummary, error)
	Get(ctx context.Context, id types.ProcurementID) (*model.ProcurementSummary, error)

	// Join adds a user to an active procurement and refreshes its
	// current_amount. Fails with model.ErrNotActive or model.ErrAlreadyJoined.
	Join(ctx context.Context, id types.ProcurementID, req *model.JoinRequest) (*model.Participant, error)

	// Leave acknowledges a leave request for the procurement
	Leave(ctx context.Context, id types.ProcurementID) error

	Categories(ctx context.Context) ([]*model.Category, error)
}

// UserUseCase defines user account operations
type UserUseCase interface {
	Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	Get(ctx context.Context, id types.UserID) (*model.User, error)
}

// ChatUseCase defines procurement discussion operations
type ChatUseCase interface {
	ListMessages(ctx context.Context, procurementID types.ProcurementID) ([]*model.Message, error)
	PostMessage(ctx context.Context, procurementID types.ProcurementID, req *model.PostMessageRequest) (*model.Message, error)
}

// PaymentUseCase defines payment record operations
type PaymentUseCase interface {
	Record(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error)
	Get(ctx context.Context, id string) (*model.Payment, error)
	ListByParticipant(ctx context.Context, participantID types.ParticipantID) ([]*model.Payment, error)
}

// Notifier announces domain events to an external channel
type Notifier interface {
	ProcurementCreated(ctx context.Context, p *model.Procurement) error
}
