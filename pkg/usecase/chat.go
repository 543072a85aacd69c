package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

type chatUseCase struct {
	repo         interfaces.ChatRepository
	procurements interfaces.ProcurementRepository
}

// NewChat creates a new instance of ChatUseCase. Messages can only be
// posted to procurements that exist.
func NewChat(repo interfaces.ChatRepository, procurements interfaces.ProcurementRepository) interfaces.ChatUseCase {
	return &chatUseCase{repo: repo, procurements: procurements}
}

// ListMessages returns a procurement's discussion thread
func (uc *chatUseCase) ListMessages(ctx context.Context, procurementID types.ProcurementID) ([]*model.Message, error) {
	if _, err := uc.procurements.Get(ctx, procurementID); err != nil {
		return nil, err
	}
	return uc.repo.ListMessages(ctx, procurementID)
}

// PostMessage appends a message to a procurement's discussion thread
func (uc *chatUseCase) PostMessage(ctx context.Context, procurementID types.ProcurementID, req *model.PostMessageRequest) (*model.Message, error) {
	if req.UserID == 0 {
		return nil, goerr.Wrap(model.ErrValidation, "user_id is required")
	}
	if req.Text == "" {
		return nil, goerr.Wrap(model.ErrValidation, "text is required")
	}

	if _, err := uc.procurements.Get(ctx, procurementID); err != nil {
		return nil, err
	}

	return uc.repo.CreateMessage(ctx, &model.Message{
		ID:            uuid.NewString(),
		ProcurementID: procurementID,
		UserID:        req.UserID,
		Text:          req.Text,
	})
}
