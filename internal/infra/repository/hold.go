package repository

import (
	"context"
	"time"

	"stockcore/internal/domain/hold"
	"stockcore/internal/infra"
	"stockcore/internal/infra/db"

	"github.com/google/uuid"
)

// HoldRepository writes the two mirrored reservation indices:
// session_holds keyed by session and resource_holds keyed by resource.
// Both tables are always touched inside the caller's transaction, so a
// session never appears in one index without its mirror in the other.
type HoldRepository struct {
	db db.DBTX
}

func NewHoldRepository(dbtx db.DBTX) *HoldRepository {
	return &HoldRepository{db: dbtx}
}

func (r *HoldRepository) InsertHold(ctx context.Context, h *hold.Hold) error {
	const insertSession = `
		INSERT INTO session_holds (session_id, resource_id, quantity, display_name, display_sku, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	const insertResource = `
		INSERT INTO resource_holds (resource_id, session_id, quantity, expires_at)
		VALUES ($1, $2, $3, $4)`

	for _, item := range h.Items() {
		if _, err := r.db.Exec(ctx, insertSession,
			h.SessionID(), item.ResourceID(), item.Quantity(),
			item.DisplayName(), item.DisplaySKU(), h.ExpiresAt(),
		); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert session hold", err)
		}
		if _, err := r.db.Exec(ctx, insertResource,
			item.ResourceID(), h.SessionID(), item.Quantity(), h.ExpiresAt(),
		); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert resource hold", err)
		}
	}
	return nil
}

func (r *HoldRepository) DeleteSession(ctx context.Context, sessionID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM session_holds WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete session holds", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM resource_holds WHERE session_id = $1`, sessionID); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete resource holds", err)
	}
	return tag.RowsAffected(), nil
}

// ExtendSession refreshes expiry on both indices. Rows already expired at
// `now` are left alone so a dead hold cannot be resurrected.
func (r *HoldRepository) ExtendSession(ctx context.Context, sessionID string, until, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE session_holds SET expires_at = $1 WHERE session_id = $2 AND expires_at > $3`,
		until, sessionID, now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to extend session holds", err)
	}
	if _, err := r.db.Exec(ctx,
		`UPDATE resource_holds SET expires_at = $1 WHERE session_id = $2 AND expires_at > $3`,
		until, sessionID, now,
	); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to extend resource holds", err)
	}
	return tag.RowsAffected(), nil
}

// SessionExpiry returns the expiry of the session's active hold, or nil when
// the session holds nothing that is still alive at `now`.
func (r *HoldRepository) SessionExpiry(ctx context.Context, sessionID string, now time.Time) (*time.Time, error) {
	var expiresAt *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT MIN(expires_at) FROM session_holds WHERE session_id = $1 AND expires_at > $2`,
		sessionID, now,
	).Scan(&expiresAt)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read session expiry", err)
	}
	return expiresAt, nil
}

// SessionItems returns the lines of the session's active hold, empty when
// nothing is alive at `now`.
func (r *HoldRepository) SessionItems(ctx context.Context, sessionID string, now time.Time) ([]hold.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT resource_id, quantity, display_name, display_sku
		 FROM session_holds
		 WHERE session_id = $1 AND expires_at > $2
		 ORDER BY resource_id`,
		sessionID, now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read session holds", err)
	}
	defer rows.Close()

	var items []hold.Item
	for rows.Next() {
		var resourceID uuid.UUID
		var quantity int64
		var displayName, displaySKU string
		if err := rows.Scan(&resourceID, &quantity, &displayName, &displaySKU); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan session hold", err)
		}
		item, err := hold.NewItem(resourceID, quantity, displayName, displaySKU)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored hold row is invalid", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate session holds", err)
	}
	return items, nil
}

func (r *HoldRepository) ReservedTotals(ctx context.Context, resourceIDs []uuid.UUID, now time.Time) (map[uuid.UUID]int64, error) {
	totals := make(map[uuid.UUID]int64, len(resourceIDs))
	if len(resourceIDs) == 0 {
		return totals, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT resource_id, COALESCE(SUM(quantity), 0)
		 FROM resource_holds
		 WHERE resource_id = ANY($1) AND expires_at > $2
		 GROUP BY resource_id`,
		resourceIDs, now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to sum resource holds", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resourceID uuid.UUID
		var total int64
		if err := rows.Scan(&resourceID, &total); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan resource hold total", err)
		}
		totals[resourceID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate resource hold totals", err)
	}
	return totals, nil
}

func (r *HoldRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM session_holds WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete expired session holds", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM resource_holds WHERE expires_at <= $1`, now); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to delete expired resource holds", err)
	}
	return tag.RowsAffected(), nil
}
