package repository

import (
	"context"
	"errors"
	"time"

	"stockcore/internal/domain/ledger"
	"stockcore/internal/infra"
	"stockcore/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepository appends immutable entries. There is deliberately no
// update or delete: corrections happen through reversal entries.
type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(dbtx db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: dbtx}
}

func (r *LedgerRepository) Insert(ctx context.Context, entry *ledger.Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ledger_entries (
			id, tenant_id, resource_id, entry_type,
			weight_before, weight_change, weight_after,
			linked_operation_ref, reversal_of_id, is_reversal,
			actor, description, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		entry.ID(), entry.TenantID(), entry.ResourceID(), entry.Type().String(),
		entry.WeightBefore(), entry.WeightChange(), entry.WeightAfter(),
		entry.LinkedOperationRef(), entry.ReversalOfID(), entry.IsReversal(),
		entry.Actor(), entry.Description(), entry.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert ledger entry", err)
	}
	return nil
}

func (r *LedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, resource_id, entry_type,
			weight_before::text, weight_change::text, weight_after::text,
			linked_operation_ref, reversal_of_id, is_reversal,
			actor, description, created_at
		 FROM ledger_entries WHERE id = $1`, id)

	var (
		entryID, tenantID, resourceID  uuid.UUID
		entryType                      string
		beforeRaw, changeRaw, afterRaw string
		linkedRef, actor               *string
		reversalOfID                   *uuid.UUID
		isReversal                     bool
		description                    string
		createdAt                      time.Time
	)
	err := row.Scan(
		&entryID, &tenantID, &resourceID, &entryType,
		&beforeRaw, &changeRaw, &afterRaw,
		&linkedRef, &reversalOfID, &isReversal,
		&actor, &description, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "ledger entry not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan ledger entry", err)
	}

	before, err := decimal.NewFromString(beforeRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse weight_before", err)
	}
	change, err := decimal.NewFromString(changeRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse weight_change", err)
	}
	after, err := decimal.NewFromString(afterRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse weight_after", err)
	}

	return ledger.ReconstructEntry(
		entryID, tenantID, resourceID,
		ledger.EntryType(entryType),
		before, change, after,
		linkedRef, reversalOfID, isReversal,
		actor, description, createdAt,
	), nil
}
