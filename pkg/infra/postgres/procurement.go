package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
)

const procurementColumns = `id, title, description, category_id, organizer_id, city,
	delivery_address, target_amount, stop_at_amount, current_amount, unit,
	price_per_unit, status, deadline, payment_deadline, image_url, created_at, updated_at`

func scanProcurement(row interface{ Scan(...any) error }) (*model.Procurement, error) {
	var p model.Procurement
	var deadline, paymentDeadline sql.NullTime
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.CategoryID, &p.OrganizerID, &p.City,
		&p.DeliveryAddress, &p.TargetAmount, &p.StopAtAmount, &p.CurrentAmount, &p.Unit,
		&p.PricePerUnit, &p.Status, &deadline, &paymentDeadline, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Deadline = deadline.Time
	p.PaymentDeadline = paymentDeadline.Time
	return &p, nil
}

// List returns procurements matching the filter, newest first. The query
// is built dynamically from the provided filter fields.
func (c *Client) List(ctx context.Context, filter *model.ProcurementFilter) ([]*model.Procurement, error) {
	var conditions []string
	var args []any

	if filter != nil {
		if filter.Status != nil {
			args = append(args, *filter.Status)
			conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
		}
		if filter.City != nil {
			args = append(args, *filter.City)
			conditions = append(conditions, fmt.Sprintf("city = $%d", len(args)))
		}
		if filter.CategoryID != nil {
			args = append(args, *filter.CategoryID)
			conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
		}
		if filter.OrganizerID != nil {
			args = append(args, *filter.OrganizerID)
			conditions = append(conditions, fmt.Sprintf("organizer_id = $%d", len(args)))
		}
	}

	query := "SELECT " + procurementColumns + " FROM procurements"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list procurements")
	}
	defer rows.Close()

	var results []*model.Procurement
	for rows.Next() {
		p, err := scanProcurement(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan procurement row")
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate procurement rows")
	}

	ctxlog.From(ctx).Debug("Listed procurements", "count", len(results), "conditions", len(conditions))
	return results, nil
}

// Get returns a single procurement or model.ErrNotFound
func (c *Client) Get(ctx context.Context, id types.ProcurementID) (*model.Procurement, error) {
	row := c.db.QueryRowContext(ctx,
		"SELECT "+procurementColumns+" FROM procurements WHERE id = $1", id)

	p, err := scanProcurement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(model.ErrNotFound, "procurement not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get procurement", goerr.V("id", id))
	}
	return p, nil
}

// Create inserts a procurement and returns the stored row
func (c *Client) Create(ctx context.Context, p *model.Procurement) (*model.Procurement, error) {
	row := c.db.QueryRowContext(ctx, `
		INSERT INTO procurements (title, description, category_id, organizer_id, city,
			delivery_address, target_amount, stop_at_amount, unit, price_per_unit,
			status, deadline, payment_deadline, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+procurementColumns,
		p.Title, p.Description, p.CategoryID, p.OrganizerID, p.City,
		p.DeliveryAddress, p.TargetAmount, p.StopAtAmount, p.Unit, p.PricePerUnit,
		p.Status, nullTime(p.Deadline), nullTime(p.PaymentDeadline), p.ImageURL,
	)

	created, err := scanProcurement(row)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create procurement", goerr.V("title", p.Title))
	}
	return created, nil
}

// CountParticipants counts active participants of a procurement
func (c *Client) CountParticipants(ctx context.Context, id types.ProcurementID) (int64, error) {
	var count int64
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM participants WHERE procurement_id = $1 AND is_active = TRUE", id,
	).Scan(&count)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count participants", goerr.V("procurement_id", id))
	}
	return count, nil
}

// AddParticipant inserts a participation row. A unique violation on
// (procurement_id, user_id) maps to model.ErrAlreadyJoined.
func (c *Client) AddParticipant(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	row := c.db.QueryRowContext(ctx, `
		INSERT INTO participants (procurement_id, user_id, quantity, amount, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, procurement_id, user_id, quantity, amount, notes, is_active, joined_at`,
		p.ProcurementID, p.UserID, p.Quantity, p.Amount, p.Notes,
	)

	var created model.Participant
	if err := row.Scan(
		&created.ID, &created.ProcurementID, &created.UserID, &created.Quantity,
		&created.Amount, &created.Notes, &created.IsActive, &created.JoinedAt,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, goerr.Wrap(model.ErrAlreadyJoined, "duplicate participation",
				goerr.V("procurement_id", p.ProcurementID), goerr.V("user_id", p.UserID))
		}
		return nil, goerr.Wrap(err, "failed to add participant")
	}
	return &created, nil
}

// RecalculateAmount recomputes current_amount from active participants
func (c *Client) RecalculateAmount(ctx context.Context, id types.ProcurementID) error {
	_, err := c.db.ExecContext(ctx, `
		UPDATE procurements
		SET current_amount = (
			SELECT COALESCE(SUM(amount), 0) FROM participants
			WHERE procurement_id = $1 AND is_active = TRUE
		), updated_at = NOW()
		WHERE id = $1`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to recalculate amount", goerr.V("procurement_id", id))
	}
	return nil
}

// ListCategories returns active categories ordered by name
func (c *Client) ListCategories(ctx context.Context) ([]*model.Category, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT id, name, is_active FROM categories WHERE is_active = TRUE ORDER BY name")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.IsActive); err != nil {
			return nil, goerr.Wrap(err, "failed to scan category row")
		}
		categories = append(categories, &cat)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate category rows")
	}
	return categories, nil
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
