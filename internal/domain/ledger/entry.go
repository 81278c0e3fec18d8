package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrNegativeStock    = errors.New("entry would drive stock negative")
	ErrNegativeTarget   = errors.New("target amount cannot be negative")
	ErrResourceMismatch = errors.New("reversal references an entry for a different resource")
	ErrReversalAmount   = errors.New("reversal amount must exactly negate the original entry")
	ErrEmptyDescription = errors.New("description cannot be empty")
)

// Entry is one immutable, permanent stock-affecting event. Entries are never
// updated after they are written; a mistake is corrected by a later reversal
// entry that references this one. weightAfter is always derived from
// weightBefore + weightChange and is not independently settable.
type Entry struct {
	id                 uuid.UUID
	tenantID           uuid.UUID
	resourceID         uuid.UUID
	entryType          EntryType
	weightBefore       decimal.Decimal
	weightChange       decimal.Decimal
	weightAfter        decimal.Decimal
	linkedOperationRef *string
	reversalOfID       *uuid.UUID
	isReversal         bool
	actor              *string
	description        string
	createdAt          time.Time
}

// NewUsage records a permanent consumption of stock (weightChange = -amount).
func NewUsage(tenantID, resourceID uuid.UUID, before, amount decimal.Decimal, linkedRef, actor *string, description string, now time.Time) (*Entry, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	change := amount.Neg()
	after := before.Add(change)
	if after.IsNegative() {
		return nil, ErrNegativeStock
	}
	return newEntry(tenantID, resourceID, TypeUsage, before, change, after, linkedRef, nil, false, actor, description, now)
}

// NewReturn records stock coming back. When reversalOf is non-nil the entry is
// an exact reversal: the amount must negate the original's weightChange and the
// resources must match. An ordinary unrelated return passes a nil reversalOf.
func NewReturn(tenantID, resourceID uuid.UUID, before, amount decimal.Decimal, reversalOf *Entry, linkedRef, actor *string, description string, now time.Time) (*Entry, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var reversalOfID *uuid.UUID
	isReversal := false
	if reversalOf != nil {
		if reversalOf.resourceID != resourceID {
			return nil, ErrResourceMismatch
		}
		if !amount.Equal(reversalOf.weightChange.Neg()) {
			return nil, ErrReversalAmount
		}
		id := reversalOf.id
		reversalOfID = &id
		isReversal = true
	}

	after := before.Add(amount)
	return newEntry(tenantID, resourceID, TypeReturn, before, amount, after, linkedRef, reversalOfID, isReversal, actor, description, now)
}

// NewAdjustment records a manual correction that sets stock to newAmount.
// The change is derived so the additive invariant still holds.
func NewAdjustment(tenantID, resourceID uuid.UUID, before, newAmount decimal.Decimal, actor *string, reason string, now time.Time) (*Entry, error) {
	if newAmount.IsNegative() {
		return nil, ErrNegativeTarget
	}
	if strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyDescription
	}
	change := newAmount.Sub(before)
	return newEntry(tenantID, resourceID, TypeAdjustment, before, change, newAmount, nil, nil, false, actor, reason, now)
}

func newEntry(tenantID, resourceID uuid.UUID, entryType EntryType, before, change, after decimal.Decimal, linkedRef *string, reversalOfID *uuid.UUID, isReversal bool, actor *string, description string, now time.Time) (*Entry, error) {
	return &Entry{
		id:                 uuid.New(),
		tenantID:           tenantID,
		resourceID:         resourceID,
		entryType:          entryType,
		weightBefore:       before,
		weightChange:       change,
		weightAfter:        after,
		linkedOperationRef: linkedRef,
		reversalOfID:       reversalOfID,
		isReversal:         isReversal,
		actor:              actor,
		description:        strings.TrimSpace(description),
		createdAt:          now,
	}, nil
}

func ReconstructEntry(
	id, tenantID, resourceID uuid.UUID,
	entryType EntryType,
	before, change, after decimal.Decimal,
	linkedRef *string,
	reversalOfID *uuid.UUID,
	isReversal bool,
	actor *string,
	description string,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:                 id,
		tenantID:           tenantID,
		resourceID:         resourceID,
		entryType:          entryType,
		weightBefore:       before,
		weightChange:       change,
		weightAfter:        after,
		linkedOperationRef: linkedRef,
		reversalOfID:       reversalOfID,
		isReversal:         isReversal,
		actor:              actor,
		description:        description,
		createdAt:          createdAt,
	}
}

// Reverses reports whether e exactly cancels orig's effect.
func (e *Entry) Reverses(orig *Entry) bool {
	return e.isReversal &&
		e.reversalOfID != nil &&
		*e.reversalOfID == orig.id &&
		e.resourceID == orig.resourceID &&
		e.weightChange.Equal(orig.weightChange.Neg())
}

func (e *Entry) ID() uuid.UUID                 { return e.id }
func (e *Entry) TenantID() uuid.UUID           { return e.tenantID }
func (e *Entry) ResourceID() uuid.UUID         { return e.resourceID }
func (e *Entry) Type() EntryType               { return e.entryType }
func (e *Entry) WeightBefore() decimal.Decimal { return e.weightBefore }
func (e *Entry) WeightChange() decimal.Decimal { return e.weightChange }
func (e *Entry) WeightAfter() decimal.Decimal  { return e.weightAfter }
func (e *Entry) LinkedOperationRef() *string   { return e.linkedOperationRef }
func (e *Entry) ReversalOfID() *uuid.UUID      { return e.reversalOfID }
func (e *Entry) IsReversal() bool              { return e.isReversal }
func (e *Entry) Actor() *string                { return e.actor }
func (e *Entry) Description() string           { return e.description }
func (e *Entry) CreatedAt() time.Time          { return e.createdAt }
