package postgres

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

// ListMessages returns a procurement's discussion messages, oldest first
func (c *Client) ListMessages(ctx context.Context, procurementID types.ProcurementID) ([]*model.Message, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, procurement_id, user_id, text, created_at
		FROM messages WHERE procurement_id = $1 ORDER BY created_at`,
		procurementID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list messages", goerr.V("procurement_id", procurementID))
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ProcurementID, &m.UserID, &m.Text, &m.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan message row")
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate message rows")
	}
	return messages, nil
}

// CreateMessage inserts a message. The caller assigns the UUID.
func (c *Client) CreateMessage(ctx context.Context, m *model.Message) (*model.Message, error) {
	row := c.db.QueryRowContext(ctx, `
		INSERT INTO messages (id, procurement_id, user_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, procurement_id, user_id, text, created_at`,
		m.ID, m.ProcurementID, m.UserID, m.Text,
	)

	var created model.Message
	if err := row.Scan(&created.ID, &created.ProcurementID, &created.UserID,
		&created.Text, &created.CreatedAt); err != nil {
		return nil, goerr.Wrap(err, "failed to create message", goerr.V("procurement_id", m.ProcurementID))
	}
	return &created, nil
}
