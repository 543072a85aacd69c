package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

// CreateUser inserts a user account. Re-registering an existing
// telegram_id updates the profile fields instead of failing, since the
// bot frontend retries registration on every /start.
func (c *Client) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	row := c.db.QueryRowContext(ctx, `
		INSERT INTO users (telegram_id, username, first_name, city)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (telegram_id) DO UPDATE
		SET username = EXCLUDED.username, first_name = EXCLUDED.first_name, city = EXCLUDED.city
		RETURNING id, telegram_id, username, first_name, city, created_at`,
		u.TelegramID, u.Username, u.FirstName, u.City,
	)

	var created model.User
	if err := row.Scan(&created.ID, &created.TelegramID, &created.Username,
		&created.FirstName, &created.City, &created.CreatedAt); err != nil {
		return nil, goerr.Wrap(err, "failed to create user", goerr.V("telegram_id", u.TelegramID))
	}
	return &created, nil
}

// GetUser returns a user or model.ErrNotFound
func (c *Client) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	row := c.db.QueryRowContext(ctx,
		"SELECT id, telegram_id, username, first_name, city, created_at FROM users WHERE id = $1", id)

	var u model.User
	if err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.City, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(model.ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}
	return &u, nil
}
