package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryView represents read-optimized ledger entry data
type EntryView struct {
	ID                 uuid.UUID       `json:"id"`
	TenantID           uuid.UUID       `json:"tenant_id"`
	ResourceID         uuid.UUID       `json:"resource_id"`
	Type               string          `json:"type"`
	WeightBefore       decimal.Decimal `json:"weight_before"`
	WeightChange       decimal.Decimal `json:"weight_change"`
	WeightAfter        decimal.Decimal `json:"weight_after"`
	LinkedOperationRef *string         `json:"linked_operation_ref,omitempty"`
	ReversalOfID       *uuid.UUID      `json:"reversal_of_id,omitempty"`
	IsReversal         bool            `json:"is_reversal"`
	Actor              *string         `json:"actor,omitempty"`
	Description        string          `json:"description"`
	CreatedAt          time.Time       `json:"created_at"`
}

// EntryFilter narrows ListEntries; nil fields match everything.
type EntryFilter struct {
	ResourceID *uuid.UUID
	Type       *string
	From       *time.Time
	To         *time.Time
}

// AvailabilityView is the reconciliation read model:
// Available = max(0, Total - Reserved), computed fresh per request.
type AvailabilityView struct {
	ResourceID uuid.UUID       `json:"resource_id"`
	Total      decimal.Decimal `json:"total"`
	Reserved   int64           `json:"reserved"`
	Available  decimal.Decimal `json:"available"`
	Unbounded  bool            `json:"unbounded"`
}

// TypeStats aggregates one entry type inside a resource summary.
type TypeStats struct {
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type ResourceSummaryView struct {
	ResourceID    uuid.UUID            `json:"resource_id"`
	TotalUsed     decimal.Decimal      `json:"total_used"`
	TotalReturned decimal.Decimal      `json:"total_returned"`
	TotalAdjusted decimal.Decimal      `json:"total_adjusted"`
	ByType        map[string]TypeStats `json:"by_type"`
}

type SufficiencyRequest struct {
	ResourceID uuid.UUID       `json:"resource_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type Shortfall struct {
	ResourceID uuid.UUID       `json:"resource_id"`
	Required   decimal.Decimal `json:"required"`
	Available  decimal.Decimal `json:"available"`
}

type SufficiencyResult struct {
	OK         bool        `json:"ok"`
	Shortfalls []Shortfall `json:"shortfalls,omitempty"`
}
