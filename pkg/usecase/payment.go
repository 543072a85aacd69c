package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

type paymentUseCase struct {
	repo interfaces.PaymentRepository
}

// NewPayment creates a new instance of PaymentUseCase
func NewPayment(repo interfaces.PaymentRepository) interfaces.PaymentUseCase {
	return &paymentUseCase{repo: repo}
}

// Record stores a pending payment for a participation
func (uc *paymentUseCase) Record(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error) {
	if req.ParticipantID == 0 {
		return nil, goerr.Wrap(model.ErrValidation, "participant_id is required")
	}
	if req.Amount <= 0 {
		return nil, goerr.Wrap(model.ErrValidation, "amount must be positive")
	}

	return uc.repo.CreatePayment(ctx, &model.Payment{
		ID:            uuid.NewString(),
		ParticipantID: req.ParticipantID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        model.PaymentPending,
	})
}

// Get returns a payment record
func (uc *paymentUseCase) Get(ctx context.Context, id string) (*model.Payment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, goerr.Wrap(model.ErrValidation, "invalid payment id", goerr.V("id", id))
	}
	return uc.repo.GetPayment(ctx, id)
}

// ListByParticipant returns a participant's payments
func (uc *paymentUseCase) ListByParticipant(ctx context.Context, participantID types.ParticipantID) ([]*model.Payment, error) {
	return uc.repo.ListPaymentsByParticipant(ctx, participantID)
}
