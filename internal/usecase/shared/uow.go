package shared

import (
	"context"
	"time"

	"stockcore/internal/domain/catalog"
	"stockcore/internal/domain/hold"
	"stockcore/internal/domain/ledger"
	"stockcore/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Holds() HoldRepository
	Stock() StockRepository
	Ledger() LedgerRepository
	Catalog() CatalogRepository
	DB() db.DBTX
}

// HoldRepository mutates the two mirrored reservation indices. Every method
// that touches holds writes the session-keyed and resource-keyed rows inside
// the surrounding transaction, so both update or neither does.
type HoldRepository interface {
	InsertHold(ctx context.Context, h *hold.Hold) error
	DeleteSession(ctx context.Context, sessionID string) (int64, error)
	ExtendSession(ctx context.Context, sessionID string, until, now time.Time) (int64, error)
	SessionExpiry(ctx context.Context, sessionID string, now time.Time) (*time.Time, error)
	SessionItems(ctx context.Context, sessionID string, now time.Time) ([]hold.Item, error)
	ReservedTotals(ctx context.Context, resourceIDs []uuid.UUID, now time.Time) (map[uuid.UUID]int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// StockRepository owns the authoritative on-hand quantity. It is mutated
// exclusively by ledger operations; nothing else writes it.
type StockRepository interface {
	QuantityForUpdate(ctx context.Context, resourceID uuid.UUID) (decimal.Decimal, error)
	SetQuantity(ctx context.Context, resourceID uuid.UUID, quantity decimal.Decimal) error
}

type LedgerRepository interface {
	Insert(ctx context.Context, entry *ledger.Entry) error
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Entry, error)
}

// CatalogRepository reads reservable resources. The ForUpdate variants lock
// the catalog rows (ordered by id) and are the serialization point for all
// check-then-write sequences against a resource.
type CatalogRepository interface {
	FindResource(ctx context.Context, id uuid.UUID) (*catalog.Resource, error)
	FindResourceForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Resource, error)
	FindResourcesForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Resource, error)
}
