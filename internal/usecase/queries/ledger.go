package queries

import (
	"context"
	"time"

	"stockcore/internal/infra/db"
	"stockcore/internal/pkg/errs"
	"stockcore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCursor = errs.New("invalid pagination cursor")
	ErrInvalidFilter = errs.New("invalid entry filter")
)

type LedgerQueries interface {
	ListEntries(ctx context.Context, filter EntryFilter, after *Cursor, limit int) ([]*EntryView, *Cursor, error)
	ResourceSummary(ctx context.Context, resourceID uuid.UUID) (*ResourceSummaryView, error)
	ValidateSufficiency(ctx context.Context, requests []SufficiencyRequest) (*SufficiencyResult, error)
}

// LedgerReadStore is the infra-side read model for durable ledger rows and
// authoritative stock. Sufficiency deliberately reads stock only: the
// ledger's notion of truth is independent of the transient reservations.
type LedgerReadStore interface {
	ListEntries(ctx context.Context, dbtx db.DBTX, filter EntryFilter, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*EntryView, error)
	ResourceSummary(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) (*ResourceSummaryView, error)
	StockQuantities(ctx context.Context, dbtx db.DBTX, resourceIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}

type ledgerQueriesImpl struct {
	uow   shared.UnitOfWork
	store LedgerReadStore
}

func NewLedgerQueries(uow shared.UnitOfWork, store LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{uow: uow, store: store}
}

func (q *ledgerQueriesImpl) ListEntries(ctx context.Context, filter EntryFilter, after *Cursor, limit int) ([]*EntryView, *Cursor, error) {
	if filter.Type != nil {
		switch *filter.Type {
		case "usage", "return", "adjustment":
		default:
			return nil, nil, ErrInvalidFilter
		}
	}

	limit = ValidateLimit(limit)

	var afterCreatedAt *time.Time
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterCreatedAt = &t
		afterID = &id
	}

	var entries []*EntryView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var storeErr error
		// Fetch one extra row to learn whether a next page exists.
		entries, storeErr = q.store.ListEntries(ctx, dbtx, filter, afterCreatedAt, afterID, int32(limit)+1)
		return storeErr
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return entries, next, nil
}

func (q *ledgerQueriesImpl) ResourceSummary(ctx context.Context, resourceID uuid.UUID) (*ResourceSummaryView, error) {
	var summary *ResourceSummaryView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var storeErr error
		summary, storeErr = q.store.ResourceSummary(ctx, dbtx, resourceID)
		return storeErr
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (q *ledgerQueriesImpl) ValidateSufficiency(ctx context.Context, requests []SufficiencyRequest) (*SufficiencyResult, error) {
	if len(requests) == 0 {
		return &SufficiencyResult{OK: true}, nil
	}

	ids := make([]uuid.UUID, 0, len(requests))
	for _, req := range requests {
		if req.ResourceID == uuid.Nil || !req.Amount.IsPositive() {
			return nil, ErrInvalidFilter
		}
		ids = append(ids, req.ResourceID)
	}

	var quantities map[uuid.UUID]decimal.Decimal
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var storeErr error
		quantities, storeErr = q.store.StockQuantities(ctx, dbtx, ids)
		return storeErr
	})
	if err != nil {
		return nil, err
	}

	result := &SufficiencyResult{OK: true}
	for _, req := range requests {
		available := quantities[req.ResourceID] // zero value when no stock row
		if available.LessThan(req.Amount) {
			result.OK = false
			result.Shortfalls = append(result.Shortfalls, Shortfall{
				ResourceID: req.ResourceID,
				Required:   req.Amount,
				Available:  available,
			})
		}
	}
	return result, nil
}
