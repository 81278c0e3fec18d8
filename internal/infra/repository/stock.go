package repository

import (
	"context"
	"errors"

	"stockcore/internal/infra"
	"stockcore/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// StockRepository holds the authoritative on-hand quantity per resource.
// Writes come only from ledger operations; reserve/release never touch it.
type StockRepository struct {
	db db.DBTX
}

func NewStockRepository(dbtx db.DBTX) *StockRepository {
	return &StockRepository{db: dbtx}
}

// QuantityForUpdate locks the stock row for the rest of the transaction.
// A resource with no stock row yet reads as zero; the caller is expected to
// hold the catalog row lock, which serializes the first insert.
func (r *StockRepository) QuantityForUpdate(ctx context.Context, resourceID uuid.UUID) (decimal.Decimal, error) {
	return r.quantity(ctx, resourceID, `SELECT quantity::text FROM stock_levels WHERE resource_id = $1 FOR UPDATE`)
}

func (r *StockRepository) Quantity(ctx context.Context, resourceID uuid.UUID) (decimal.Decimal, error) {
	return r.quantity(ctx, resourceID, `SELECT quantity::text FROM stock_levels WHERE resource_id = $1`)
}

func (r *StockRepository) quantity(ctx context.Context, resourceID uuid.UUID, query string) (decimal.Decimal, error) {
	var raw string
	err := r.db.QueryRow(ctx, query, resourceID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, infra.WrapRepoErr(infra.KindDBFailure, "failed to read stock level", err)
	}

	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse stock quantity", err)
	}
	return quantity, nil
}

func (r *StockRepository) SetQuantity(ctx context.Context, resourceID uuid.UUID, quantity decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stock_levels (resource_id, quantity, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (resource_id) DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		resourceID, quantity,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to write stock level", err)
	}
	return nil
}
