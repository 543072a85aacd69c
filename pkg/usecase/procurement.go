package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
	"github.com/groupbuy/core/pkg/domain/types"
	"github.com/groupbuy/core/pkg/utils/async"
)

type procurementUseCase struct {
	repo     interfaces.ProcurementRepository
	cache    interfaces.ProcurementCache // optional
	notifier interfaces.Notifier         // optional
}

// ProcurementOption configures the procurement use case
type ProcurementOption func(*procurementUseCase)

// WithCache attaches a listing cache
func WithCache(cache interfaces.ProcurementCache) ProcurementOption {
	return func(uc *procurementUseCase) {
		uc.cache = cache
	}
}

// WithNotifier attaches a creation announcer
func WithNotifier(notifier interfaces.Notifier) ProcurementOption {
	return func(uc *procurementUseCase) {
		uc.notifier = notifier
	}
}

// NewProcurement creates a new instance of ProcurementUseCase
func NewProcurement(repo interfaces.ProcurementRepository, opts ...ProcurementOption) interfaces.ProcurementUseCase {
	uc := &procurementUseCase{repo: repo}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// List returns procurements matching the filter with participant counts.
// Cache failures degrade to a direct repository read.
func (uc *procurementUseCase) List(ctx context.Context, filter *model.ProcurementFilter) ([]*model.ProcurementSummary, error) {
	logger := ctxlog.From(ctx)

	if uc.cache != nil {
		cached, err := uc.cache.GetList(ctx, filter)
		if err != nil {
			logger.Warn("Listing cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	procurements, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.ProcurementSummary, 0, len(procurements))
	for _, p := range procurements {
		count, err := uc.repo.CountParticipants(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &model.ProcurementSummary{Procurement: *p, ParticipantCount: count})
	}

	if uc.cache != nil {
		if err := uc.cache.SetList(ctx, filter, summaries); err != nil {
			logger.Warn("Listing cache write failed", "error", err)
		}
	}

	return summaries, nil
}

// Create validates and stores a new procurement, then announces it
func (uc *procurementUseCase) Create(ctx context.Context, req *model.CreateProcurementRequest) (*model.ProcurementSummary, error) {
	if req.Title == "" {
		return nil, goerr.Wrap(model.ErrValidation, "title is required")
	}
	if req.OrganizerID == 0 {
		return nil, goerr.Wrap(model.ErrValidation, "organizer_id is required")
	}

	created, err := uc.repo.Create(ctx, req.Procurement())
	if err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)

	if uc.notifier != nil {
		p := *created
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.notifier.ProcurementCreated(ctx, &p)
		})
	}

	ctxlog.From(ctx).Info("Created procurement",
		"id", created.ID,
		"title", created.Title,
		"organizer_id", created.OrganizerID,
		"status", created.Status,
	)

	return &model.ProcurementSummary{Procurement: *created, ParticipantCount: 0}, nil
}

// Get returns one procurement with its participant count
func (uc *procurementUseCase) Get(ctx context.Context, id types.ProcurementID) (*model.ProcurementSummary, error) {
	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := uc.repo.CountParticipants(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.ProcurementSummary{Procurement: *p, ParticipantCount: count}, nil
}

// Join adds a user to an active procurement and refreshes current_amount
func (uc *procurementUseCase) Join(ctx context.Context, id types.ProcurementID, req *model.JoinRequest) (*model.Participant, error) {
	if req.UserID == nil {
		return nil, goerr.Wrap(model.ErrValidation, "user_id is required")
	}

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != model.ProcurementActive {
		return nil, goerr.Wrap(model.ErrNotActive, "cannot join",
			goerr.V("procurement_id", id), goerr.V("status", p.Status))
	}

	participant := &model.Participant{
		ProcurementID: id,
		UserID:        *req.UserID,
		Quantity:      1,
		Amount:        req.Amount,
	}
	if req.Quantity != nil {
		participant.Quantity = *req.Quantity
	}
	if req.Notes != nil {
		participant.Notes = *req.Notes
	}

	created, err := uc.repo.AddParticipant(ctx, participant)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.RecalculateAmount(ctx, id); err != nil {
		// The participation is stored; the amount catches up on the next join
		ctxlog.From(ctx).Warn("Failed to recalculate procurement amount",
			"procurement_id", id, "error", err)
	}

	uc.invalidateListings(ctx)

	return created, nil
}

// Leave acknowledges a leave request. Deactivating the participation
// requires the caller's identity, which arrives with the auth layer;
// until then this mirrors the acknowledge-only behavior of the bot.
func (uc *procurementUseCase) Leave(ctx context.Context, id types.ProcurementID) error {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		return err
	}
	return nil
}

// Categories returns active categories ordered by name
func (uc *procurementUseCase) Categories(ctx context.Context) ([]*model.Category, error) {
	return uc.repo.ListCategories(ctx)
}

func (uc *procurementUseCase) invalidateListings(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		ctxlog.From(ctx).Warn("Listing cache invalidation failed", "error", err)
	}
}
