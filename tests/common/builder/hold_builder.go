//go:build unit || e2e

package builder

import (
	"time"

	domhold "stockcore/internal/domain/hold"

	"github.com/google/uuid"
)

type HoldLine struct {
	ResourceID  uuid.UUID
	Quantity    int64
	DisplayName string
	DisplaySKU  string
}

type HoldBuilder struct {
	SessionID string
	Lines     []HoldLine
	ExpiresAt time.Time
}

func NewHoldBuilder() *HoldBuilder {
	return &HoldBuilder{
		SessionID: "session-001",
		Lines: []HoldLine{
			{ResourceID: uuid.New(), Quantity: 2, DisplayName: "Widget", DisplaySKU: "WGT-01"},
		},
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
}

func (b *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(b)
	return b
}

func (b *HoldBuilder) BuildDomain() (*domhold.Hold, error) {
	items := make([]domhold.Item, 0, len(b.Lines))
	for _, line := range b.Lines {
		item, err := domhold.NewItem(line.ResourceID, line.Quantity, line.DisplayName, line.DisplaySKU)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return domhold.NewHold(b.SessionID, items, b.ExpiresAt)
}
