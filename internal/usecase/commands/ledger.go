package commands

import (
	"context"
	"errors"
	"fmt"

	"stockcore/internal/domain/ledger"
	"stockcore/internal/infra"
	"stockcore/internal/pkg/clock"
	"stockcore/internal/pkg/errs"
	"stockcore/internal/usecase/queries"
	"stockcore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryNotFound    = errs.New("ledger entry not found")
	ErrReversalMismatch = errs.New("reversal does not match the original entry")
)

// InsufficientStockError carries the exact shortfall so callers can report
// how much was asked for versus how much authoritative stock remained.
type InsufficientStockError struct {
	ResourceID uuid.UUID
	Required   decimal.Decimal
	Available  decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for resource %s: required %s, available %s",
		e.ResourceID, e.Required, e.Available)
}

type UsageParams struct {
	ResourceID         uuid.UUID
	Amount             decimal.Decimal
	LinkedOperationRef *string
	Actor              *string
	Description        string
}

type ReturnParams struct {
	ResourceID         uuid.UUID
	Amount             decimal.Decimal
	ReversalOfID       *uuid.UUID
	LinkedOperationRef *string
	Actor              *string
	Description        string
}

type AdjustmentParams struct {
	ResourceID  uuid.UUID
	NewQuantity decimal.Decimal
	Actor       *string
	Reason      string
}

// LedgerCommands appends entries to the stock ledger. Every command runs in
// one transaction that locks the resource row, reads the current quantity,
// writes the entry, and moves authoritative stock to the entry's weight_after.
// Entries are append-only; corrections are new reversal entries.
type LedgerCommands interface {
	RecordUsage(ctx context.Context, params UsageParams) (*queries.EntryView, error)
	RecordReturn(ctx context.Context, params ReturnParams) (*queries.EntryView, error)
	RecordAdjustment(ctx context.Context, params AdjustmentParams) (*queries.EntryView, error)
}

type ledgerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLedgerUseCase(uow shared.UnitOfWork, clk clock.Clock) LedgerCommands {
	return &ledgerUseCaseImpl{uow: uow, clock: clk}
}

func (l *ledgerUseCaseImpl) RecordUsage(ctx context.Context, params UsageParams) (*queries.EntryView, error) {
	return l.appendEntry(ctx, params.ResourceID, func(tenantID uuid.UUID, before decimal.Decimal) (*ledger.Entry, error) {
		entry, err := ledger.NewUsage(tenantID, params.ResourceID, before, params.Amount,
			params.LinkedOperationRef, params.Actor, params.Description, l.clock.Now())
		if err != nil {
			if errors.Is(err, ledger.ErrNegativeStock) {
				return nil, &InsufficientStockError{
					ResourceID: params.ResourceID,
					Required:   params.Amount,
					Available:  before,
				}
			}
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return entry, nil
	})
}

func (l *ledgerUseCaseImpl) RecordReturn(ctx context.Context, params ReturnParams) (*queries.EntryView, error) {
	return l.appendEntryTx(ctx, params.ResourceID, func(tx shared.Tx, tenantID uuid.UUID, before decimal.Decimal) (*ledger.Entry, error) {
		var reversalOf *ledger.Entry
		if params.ReversalOfID != nil {
			orig, err := tx.Ledger().FindByID(ctx, *params.ReversalOfID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return nil, ErrEntryNotFound
				}
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
			reversalOf = orig
		}

		entry, err := ledger.NewReturn(tenantID, params.ResourceID, before, params.Amount,
			reversalOf, params.LinkedOperationRef, params.Actor, params.Description, l.clock.Now())
		if err != nil {
			if errors.Is(err, ledger.ErrReversalAmount) || errors.Is(err, ledger.ErrResourceMismatch) {
				return nil, errs.Mark(err, ErrReversalMismatch)
			}
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return entry, nil
	})
}

func (l *ledgerUseCaseImpl) RecordAdjustment(ctx context.Context, params AdjustmentParams) (*queries.EntryView, error) {
	return l.appendEntry(ctx, params.ResourceID, func(tenantID uuid.UUID, before decimal.Decimal) (*ledger.Entry, error) {
		entry, err := ledger.NewAdjustment(tenantID, params.ResourceID, before, params.NewQuantity,
			params.Actor, params.Reason, l.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return entry, nil
	})
}

func (l *ledgerUseCaseImpl) appendEntry(
	ctx context.Context,
	resourceID uuid.UUID,
	build func(tenantID uuid.UUID, before decimal.Decimal) (*ledger.Entry, error),
) (*queries.EntryView, error) {
	return l.appendEntryTx(ctx, resourceID, func(_ shared.Tx, tenantID uuid.UUID, before decimal.Decimal) (*ledger.Entry, error) {
		return build(tenantID, before)
	})
}

func (l *ledgerUseCaseImpl) appendEntryTx(
	ctx context.Context,
	resourceID uuid.UUID,
	build func(tx shared.Tx, tenantID uuid.UUID, before decimal.Decimal) (*ledger.Entry, error),
) (*queries.EntryView, error) {
	var view *queries.EntryView
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The resource row lock serializes concurrent ledger writes per
		// resource, so weight_before is always the latest weight_after.
		res, err := tx.Catalog().FindResourceForUpdate(ctx, resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		before, err := tx.Stock().QuantityForUpdate(ctx, resourceID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entry, err := build(tx, res.TenantID(), before)
		if err != nil {
			return err
		}

		if err := tx.Ledger().Insert(ctx, entry); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Stock().SetQuantity(ctx, resourceID, entry.WeightAfter()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		view = entryToView(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func entryToView(entry *ledger.Entry) *queries.EntryView {
	return &queries.EntryView{
		ID:                 entry.ID(),
		TenantID:           entry.TenantID(),
		ResourceID:         entry.ResourceID(),
		Type:               entry.Type().String(),
		WeightBefore:       entry.WeightBefore(),
		WeightChange:       entry.WeightChange(),
		WeightAfter:        entry.WeightAfter(),
		LinkedOperationRef: entry.LinkedOperationRef(),
		ReversalOfID:       entry.ReversalOfID(),
		IsReversal:         entry.IsReversal(),
		Actor:              entry.Actor(),
		Description:        entry.Description(),
		CreatedAt:          entry.CreatedAt(),
	}
}
