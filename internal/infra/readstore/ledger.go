package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockcore/internal/infra"
	"stockcore/internal/infra/db"
	"stockcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerReadStore serves list and aggregate reads straight from the
// ledger_entries table. Entries are immutable, so no snapshot isolation is
// needed here beyond the single statement.
type LedgerReadStore struct{}

func NewLedgerReadStore() *LedgerReadStore {
	return &LedgerReadStore{}
}

const entryColumns = `id, tenant_id, resource_id, entry_type,
	weight_before::text, weight_change::text, weight_after::text,
	linked_operation_ref, reversal_of_id, is_reversal, actor, description, created_at`

func (r *LedgerReadStore) ListEntries(
	ctx context.Context,
	dbtx db.DBTX,
	filter queries.EntryFilter,
	afterCreatedAt *time.Time,
	afterID *uuid.UUID,
	limit int32,
) ([]*queries.EntryView, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + entryColumns + " FROM ledger_entries")

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ResourceID != nil {
		conds = append(conds, "resource_id = "+arg(*filter.ResourceID))
	}
	if filter.Type != nil {
		conds = append(conds, "entry_type = "+arg(*filter.Type))
	}
	if filter.From != nil {
		conds = append(conds, "created_at >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "created_at < "+arg(*filter.To))
	}
	if afterCreatedAt != nil && afterID != nil {
		// Keyset pagination over the DESC ordering below.
		conds = append(conds, fmt.Sprintf("(created_at, id) < (%s, %s)", arg(*afterCreatedAt), arg(*afterID)))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC LIMIT " + arg(limit))

	rows, err := dbtx.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list ledger entries", err)
	}
	defer rows.Close()

	var views []*queries.EntryView
	for rows.Next() {
		view, err := scanEntryView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate ledger entries", err)
	}
	return views, nil
}

type entryRowScanner interface {
	Scan(dest ...any) error
}

func scanEntryView(row entryRowScanner) (*queries.EntryView, error) {
	var view queries.EntryView
	var beforeRaw, changeRaw, afterRaw string
	if err := row.Scan(
		&view.ID, &view.TenantID, &view.ResourceID, &view.Type,
		&beforeRaw, &changeRaw, &afterRaw,
		&view.LinkedOperationRef, &view.ReversalOfID, &view.IsReversal,
		&view.Actor, &view.Description, &view.CreatedAt,
	); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan ledger entry", err)
	}

	var err error
	if view.WeightBefore, err = decimal.NewFromString(beforeRaw); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse weight_before", err)
	}
	if view.WeightChange, err = decimal.NewFromString(changeRaw); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse weight_change", err)
	}
	if view.WeightAfter, err = decimal.NewFromString(afterRaw); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse weight_after", err)
	}
	return &view, nil
}

func (r *LedgerReadStore) ResourceSummary(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) (*queries.ResourceSummaryView, error) {
	rows, err := dbtx.Query(ctx,
		`SELECT entry_type, COUNT(*), COALESCE(SUM(weight_change), 0)::text
		 FROM ledger_entries
		 WHERE resource_id = $1
		 GROUP BY entry_type`,
		resourceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to aggregate ledger entries", err)
	}
	defer rows.Close()

	summary := &queries.ResourceSummaryView{
		ResourceID: resourceID,
		ByType:     make(map[string]queries.TypeStats),
	}
	for rows.Next() {
		var (
			entryType string
			count     int64
			totalRaw  string
		)
		if err := rows.Scan(&entryType, &count, &totalRaw); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan ledger summary row", err)
		}
		total, err := decimal.NewFromString(totalRaw)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse summary total", err)
		}
		summary.ByType[entryType] = queries.TypeStats{Count: count, Total: total}
		switch entryType {
		case "usage":
			// Usage changes are negative; report magnitude consumed.
			summary.TotalUsed = total.Neg()
		case "return":
			summary.TotalReturned = total
		case "adjustment":
			summary.TotalAdjusted = total
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate ledger summary", err)
	}
	return summary, nil
}

func (r *LedgerReadStore) StockQuantities(ctx context.Context, dbtx db.DBTX, resourceIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	quantities := make(map[uuid.UUID]decimal.Decimal, len(resourceIDs))
	if len(resourceIDs) == 0 {
		return quantities, nil
	}

	rows, err := dbtx.Query(ctx,
		`SELECT resource_id, quantity::text FROM stock_levels WHERE resource_id = ANY($1)`,
		resourceIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read stock quantities", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resourceID uuid.UUID
			raw        string
		)
		if err := rows.Scan(&resourceID, &raw); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan stock quantity", err)
		}
		quantity, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to parse stock quantity", err)
		}
		quantities[resourceID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate stock quantities", err)
	}
	return quantities, nil
}
