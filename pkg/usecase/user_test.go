package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
	"github.com/groupbuy/core/pkg/usecase"
)

// memUserRepo is an in-memory UserRepository keyed by telegram_id
type memUserRepo struct {
	users  map[int64]*model.User
	nextID types.UserID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (m *memUserRepo) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	if existing, ok := m.users[u.TelegramID]; ok {
		existing.Username = u.Username
		existing.FirstName = u.FirstName
		existing.City = u.City
		return existing, nil
	}
	stored := *u
	stored.ID = m.nextID
	m.nextID++
	m.users[stored.TelegramID] = &stored
	return &stored, nil
}

func (m *memUserRepo) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrNotFound
}

func TestUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("register requires telegram_id", func(t *testing.T) {
		uc := usecase.NewUser(newMemUserRepo())

		_, err := uc.Register(ctx, &model.CreateUserRequest{Username: "maria"})
		gt.True(t, errors.Is(err, model.ErrValidation))
	})

	t.Run("re-register refreshes the profile", func(t *testing.T) {
		repo := newMemUserRepo()
		uc := usecase.NewUser(repo)

		first := gt.R1(uc.Register(ctx, &model.CreateUserRequest{
			TelegramID: 1001,
			Username:   "maria",
		})).NoError(t)

		second := gt.R1(uc.Register(ctx, &model.CreateUserRequest{
			TelegramID: 1001,
			Username:   "maria_k",
			City:       "Astana",
		})).NoError(t)

		gt.Equal(t, first.ID, second.ID)
		gt.Equal(t, second.Username, "maria_k")

		fetched := gt.R1(uc.Get(ctx, first.ID)).NoError(t)
		gt.Equal(t, fetched.City, "Astana")
	})

	t.Run("get missing user", func(t *testing.T) {
		uc := usecase.NewUser(newMemUserRepo())

		_, err := uc.Get(ctx, 404)
		gt.True(t, errors.Is(err, model.ErrNotFound))
	})
}
