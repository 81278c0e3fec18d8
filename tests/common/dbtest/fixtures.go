//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestTenantID is the tenant every fixture belongs to unless a test creates
// its own. Multi-tenant isolation tests create a second one explicitly.
var TestTenantID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func CreateTestResource(t *testing.T, db DBLike, name, sku string, maxUnits int64, unbounded bool) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO resources (id, tenant_id, name, sku, max_units, unbounded)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (tenant_id, sku) DO NOTHING`,
		resourceID, TestTenantID, name, sku, maxUnits, unbounded)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx,
			"SELECT id FROM resources WHERE tenant_id = $1 AND sku = $2",
			TestTenantID, sku).Scan(&resourceID)
		require.NoError(t, err)
	}

	return resourceID
}

func SetStockLevel(t *testing.T, db DBLike, resourceID uuid.UUID, quantity decimal.Decimal) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO stock_levels (resource_id, quantity)
		 VALUES ($1, $2)
		 ON CONFLICT (resource_id) DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		resourceID, quantity)
	require.NoError(t, err)
}

func StockQuantity(t *testing.T, db DBLike, resourceID uuid.UUID) decimal.Decimal {
	t.Helper()

	var raw string
	err := db.QueryRow(context.Background(),
		"SELECT quantity::text FROM stock_levels WHERE resource_id = $1", resourceID).Scan(&raw)
	require.NoError(t, err)

	quantity, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	return quantity
}

func CountSessionHolds(t *testing.T, db DBLike, sessionID string) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM session_holds WHERE session_id = $1", sessionID).Scan(&count)
	require.NoError(t, err)
	return count
}

// ExpireSessionHolds backdates a session's hold in both mirrored indices so
// tests can exercise TTL expiry without sleeping.
func ExpireSessionHolds(t *testing.T, db DBLike, sessionID string) {
	t.Helper()
	ctx := context.Background()

	expired := time.Now().Add(-time.Minute)
	_, err := db.Exec(ctx,
		"UPDATE session_holds SET expires_at = $1 WHERE session_id = $2", expired, sessionID)
	require.NoError(t, err)
	_, err = db.Exec(ctx,
		"UPDATE resource_holds SET expires_at = $1 WHERE session_id = $2", expired, sessionID)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
