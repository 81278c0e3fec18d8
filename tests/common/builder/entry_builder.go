//go:build unit || e2e

package builder

import (
	"time"

	domledger "stockcore/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryBuilder struct {
	TenantID    uuid.UUID
	ResourceID  uuid.UUID
	Before      decimal.Decimal
	Amount      decimal.Decimal
	LinkedRef   *string
	Actor       *string
	Description string
	Now         time.Time
}

func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		TenantID:    uuid.New(),
		ResourceID:  uuid.New(),
		Before:      decimal.NewFromInt(100),
		Amount:      decimal.NewFromFloat(12.5),
		Description: "material draw for work order",
		Now:         time.Now(),
	}
}

func (b *EntryBuilder) With(mutate func(*EntryBuilder)) *EntryBuilder {
	mutate(b)
	return b
}

func (b *EntryBuilder) BuildUsage() (*domledger.Entry, error) {
	return domledger.NewUsage(b.TenantID, b.ResourceID, b.Before, b.Amount,
		b.LinkedRef, b.Actor, b.Description, b.Now)
}

func (b *EntryBuilder) BuildReturn(reversalOf *domledger.Entry) (*domledger.Entry, error) {
	return domledger.NewReturn(b.TenantID, b.ResourceID, b.Before, b.Amount,
		reversalOf, b.LinkedRef, b.Actor, b.Description, b.Now)
}

func (b *EntryBuilder) BuildAdjustment(newAmount decimal.Decimal, reason string) (*domledger.Entry, error) {
	return domledger.NewAdjustment(b.TenantID, b.ResourceID, b.Before, newAmount,
		b.Actor, reason, b.Now)
}
