package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

type userUseCase struct {
	repo interfaces.UserRepository
}

// NewUser creates a new instance of UserUseCase
func NewUser(repo interfaces.UserRepository) interfaces.UserUseCase {
	return &userUseCase{repo: repo}
}

// Register creates or refreshes a user account keyed by telegram_id
func (uc *userUseCase) Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req.TelegramID == 0 {
		return nil, goerr.Wrap(model.ErrValidation, "telegram_id is required")
	}

	return uc.repo.CreateUser(ctx, &model.User{
		TelegramID: req.TelegramID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		City:       req.City,
	})
}

// Get returns a user account
func (uc *userUseCase) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	return uc.repo.GetUser(ctx, id)
}
