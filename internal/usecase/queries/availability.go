package queries

import (
	"context"
	"time"

	"stockcore/internal/infra/db"
	"stockcore/internal/pkg/clock"
	"stockcore/internal/pkg/errs"
	"stockcore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownResource = errs.New("resource not found")

// AvailabilityQueries is the reconciliation view over the two live inputs:
// authoritative stock (or catalog capacity) minus active reservations.
// Results are computed fresh inside one read-only transaction and never
// cached beyond a single request, since either input can move between reads.
type AvailabilityQueries interface {
	// AvailableStock reconciles against authoritative on-hand stock.
	AvailableStock(ctx context.Context, resourceID uuid.UUID) (*AvailabilityView, error)
	// AvailableCapacity reconciles against the catalog capacity instead;
	// this is the number the reservation engine itself admits against.
	AvailableCapacity(ctx context.Context, resourceID uuid.UUID) (*AvailabilityView, error)
	// ReservedQuantity sums every active session's hold on the resource.
	ReservedQuantity(ctx context.Context, resourceID uuid.UUID) (int64, error)
}

// AvailabilityReadStore reads the inputs of the reconciliation view.
type AvailabilityReadStore interface {
	ResourceCapacity(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) (maxUnits int64, unbounded bool, found bool, err error)
	StockQuantity(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) (decimal.Decimal, error)
	ReservedTotal(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID, now time.Time) (int64, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, store AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, store: store, clock: clk}
}

func (q *availabilityQueriesImpl) AvailableStock(ctx context.Context, resourceID uuid.UUID) (*AvailabilityView, error) {
	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		_, _, found, err := q.store.ResourceCapacity(ctx, dbtx, resourceID)
		if err != nil {
			return err
		}
		if !found {
			return ErrUnknownResource
		}

		stock, err := q.store.StockQuantity(ctx, dbtx, resourceID)
		if err != nil {
			return err
		}
		reserved, err := q.reservedAt(ctx, dbtx, resourceID)
		if err != nil {
			return err
		}

		available := stock.Sub(decimal.NewFromInt(reserved))
		if available.IsNegative() {
			available = decimal.Zero
		}
		view = &AvailabilityView{
			ResourceID: resourceID,
			Total:      stock,
			Reserved:   reserved,
			Available:  available,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *availabilityQueriesImpl) AvailableCapacity(ctx context.Context, resourceID uuid.UUID) (*AvailabilityView, error) {
	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		maxUnits, unbounded, found, err := q.store.ResourceCapacity(ctx, dbtx, resourceID)
		if err != nil {
			return err
		}
		if !found {
			return ErrUnknownResource
		}

		reserved, err := q.reservedAt(ctx, dbtx, resourceID)
		if err != nil {
			return err
		}

		total := decimal.NewFromInt(maxUnits)
		available := total.Sub(decimal.NewFromInt(reserved))
		if available.IsNegative() {
			available = decimal.Zero
		}
		view = &AvailabilityView{
			ResourceID: resourceID,
			Total:      total,
			Reserved:   reserved,
			Available:  available,
			Unbounded:  unbounded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *availabilityQueriesImpl) reservedAt(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) (int64, error) {
	return q.store.ReservedTotal(ctx, dbtx, resourceID, q.clock.Now())
}

func (q *availabilityQueriesImpl) ReservedQuantity(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	var reserved int64
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var storeErr error
		reserved, storeErr = q.reservedAt(ctx, dbtx, resourceID)
		return storeErr
	})
	if err != nil {
		return 0, err
	}
	return reserved, nil
}
