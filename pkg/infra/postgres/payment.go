package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

// CreatePayment inserts a payment record. The caller assigns the UUID.
func (c *Client) CreatePayment(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	row := c.db.QueryRowContext(ctx, `
		INSERT INTO payments (id, participant_id, amount, method, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, participant_id, amount, method, status, created_at, confirmed_at`,
		p.ID, p.ParticipantID, p.Amount, p.Method, p.Status,
	)
	return scanPayment(row)
}

// GetPayment returns a payment or model.ErrNotFound
func (c *Client) GetPayment(ctx context.Context, id string) (*model.Payment, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, participant_id, amount, method, status, created_at, confirmed_at
		FROM payments WHERE id = $1`, id)

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(model.ErrNotFound, "payment not found", goerr.V("id", id))
		}
		return nil, err
	}
	return p, nil
}

// ListPaymentsByParticipant returns a participant's payments, newest first
func (c *Client) ListPaymentsByParticipant(ctx context.Context, participantID types.ParticipantID) ([]*model.Payment, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, participant_id, amount, method, status, created_at, confirmed_at
		FROM payments WHERE participant_id = $1 ORDER BY created_at DESC`,
		participantID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list payments", goerr.V("participant_id", participantID))
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate payment rows")
	}
	return payments, nil
}

func scanPayment(row interface{ Scan(...any) error }) (*model.Payment, error) {
	var p model.Payment
	var confirmedAt sql.NullTime
	if err := row.Scan(&p.ID, &p.ParticipantID, &p.Amount, &p.Method, &p.Status,
		&p.CreatedAt, &confirmedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to scan payment row")
	}
	if confirmedAt.Valid {
		p.ConfirmedAt = &confirmedAt.Time
	}
	return &p, nil
}
