package readstore

import (
	"context"
	"errors"
	"time"

	"stockcore/internal/infra"
	"stockcore/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AvailabilityReadStore reads the three inputs of the reconciliation view:
// catalog capacity, authoritative stock, and the active reservation total.
type AvailabilityReadStore struct{}

func NewAvailabilityReadStore() *AvailabilityReadStore {
	return &AvailabilityReadStore{}
}

func (r *AvailabilityReadStore) ResourceCapacity(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) (int64, bool, bool, error) {
	var (
		maxUnits  int64
		unbounded bool
	)
	err := dbtx.QueryRow(ctx,
		`SELECT max_units, unbounded FROM resources WHERE id = $1`,
		resourceID,
	).Scan(&maxUnits, &unbounded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, false, nil
		}
		return 0, false, false, infra.WrapRepoErr(infra.KindDBFailure, "failed to read resource capacity", err)
	}
	return maxUnits, unbounded, true, nil
}

func (r *AvailabilityReadStore) StockQuantity(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) (decimal.Decimal, error) {
	var raw string
	err := dbtx.QueryRow(ctx,
		`SELECT quantity::text FROM stock_levels WHERE resource_id = $1`,
		resourceID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A resource with no stock row has never been stocked.
			return decimal.Zero, nil
		}
		return decimal.Zero, infra.WrapRepoErr(infra.KindDBFailure, "failed to read stock quantity", err)
	}

	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse stock quantity", err)
	}
	return quantity, nil
}

func (r *AvailabilityReadStore) ReservedTotal(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID, now time.Time) (int64, error) {
	var total int64
	err := dbtx.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0)
		 FROM resource_holds
		 WHERE resource_id = $1 AND expires_at > $2`,
		resourceID, now,
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to sum active holds", err)
	}
	return total, nil
}
