package commands

import (
	"context"
	"errors"
	"time"

	"stockcore/internal/domain/hold"
	"stockcore/internal/infra"
	"stockcore/internal/pkg/clock"
	"stockcore/internal/pkg/config"
	"stockcore/internal/pkg/errs"
	"stockcore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound        = errs.New("resource not found")
	ErrSessionNotFound         = errs.New("session has no active hold")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")

	// errCapacityShort aborts the reservation transaction so partial holds
	// never commit; it is consumed inside Reserve and never escapes.
	errCapacityShort = errs.New("capacity short")
)

type ReserveItem struct {
	ResourceID uuid.UUID
	Quantity   int64
}

type ReservedItem struct {
	ResourceID  uuid.UUID `json:"resource_id"`
	Quantity    int64     `json:"quantity"`
	DisplayName string    `json:"display_name"`
	DisplaySKU  string    `json:"display_sku"`
}

// FailedItem reports one line that could not be admitted: how much was
// asked for versus how much headroom the resource had at decision time.
type FailedItem struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Requested  int64     `json:"requested"`
	Available  int64     `json:"available"`
}

// ReserveResult is returned for both outcomes of a reservation attempt.
// Success=false is a business outcome, not an error: the transaction rolled
// back, nothing was held, and Failed lists every line that fell short.
type ReserveResult struct {
	Success   bool           `json:"success"`
	SessionID string         `json:"session_id"`
	ExpiresAt time.Time      `json:"expires_at"`
	Items     []ReservedItem `json:"items,omitempty"`
	Failed    []FailedItem   `json:"failed,omitempty"`
}

// ConfirmResult carries the lines that were held at confirmation time so the
// caller can post the corresponding ledger debits.
type ConfirmResult struct {
	SessionID string         `json:"session_id"`
	Items     []ReservedItem `json:"items"`
}

type ReservationCommands interface {
	// Reserve places an all-or-nothing hold for the session across every
	// requested line. A session that reserves again replaces its previous
	// hold; on failure the previous hold survives untouched.
	Reserve(ctx context.Context, sessionID string, items []ReserveItem) (*ReserveResult, error)
	// Release drops the session's hold and returns its capacity to the
	// pool. Idempotent: returns false when nothing was held.
	Release(ctx context.Context, sessionID string) (bool, error)
	// Confirm closes the hold as committed and reports what was held.
	// Recording the stock debit is a separate ledger operation.
	Confirm(ctx context.Context, sessionID string) (*ConfirmResult, error)
	// Extend pushes the hold's expiry out by `additional`, capped at
	// now+MaxExtension, and returns the new expiry. A session with no
	// active hold is a no-op and returns nil.
	Extend(ctx context.Context, sessionID string, additional time.Duration) (*time.Time, error)
	// SweepExpired removes holds whose TTL has lapsed.
	SweepExpired(ctx context.Context) (int64, error)
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.ReservationConfig
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.ReservationConfig) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, clock: clk, cfg: cfg}
}

func (r *reservationUseCaseImpl) Reserve(ctx context.Context, sessionID string, items []ReserveItem) (*ReserveResult, error) {
	requested, err := validateReserveItems(sessionID, items)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	result := &ReserveResult{SessionID: sessionID}
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids := make([]uuid.UUID, 0, len(requested))
		for id := range requested {
			ids = append(ids, id)
		}

		// Lock the catalog rows first; this serializes every concurrent
		// check-then-write against the same resources.
		resources, err := tx.Catalog().FindResourcesForUpdate(ctx, ids)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Replace semantics: the session's previous hold does not count
		// against its own new request.
		if _, err := tx.Holds().DeleteSession(ctx, sessionID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := r.clock.Now()
		reserved, err := tx.Holds().ReservedTotals(ctx, ids, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		holdItems := make([]hold.Item, 0, len(items))
		for _, line := range items {
			res := resources[line.ResourceID]
			if !res.Accommodates(reserved[line.ResourceID], line.Quantity) {
				result.Failed = append(result.Failed, FailedItem{
					ResourceID: line.ResourceID,
					Requested:  line.Quantity,
					Available:  res.Headroom(reserved[line.ResourceID]),
				})
				continue
			}
			item, err := hold.NewItem(line.ResourceID, line.Quantity, res.Name(), res.SKU())
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			holdItems = append(holdItems, item)
		}
		if len(result.Failed) > 0 {
			return errCapacityShort
		}

		expiresAt := now.Add(r.cfg.HoldTTL)
		newHold, err := hold.NewHold(sessionID, holdItems, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Holds().InsertHold(ctx, newHold); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result.Success = true
		result.ExpiresAt = expiresAt
		for _, item := range newHold.Items() {
			result.Items = append(result.Items, ReservedItem{
				ResourceID:  item.ResourceID(),
				Quantity:    item.Quantity(),
				DisplayName: item.DisplayName(),
				DisplaySKU:  item.DisplaySKU(),
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errCapacityShort) {
			return result, nil
		}
		return nil, err
	}
	return result, nil
}

func validateReserveItems(sessionID string, items []ReserveItem) (map[uuid.UUID]int64, error) {
	if sessionID == "" {
		return nil, hold.ErrEmptySessionID
	}
	if len(sessionID) > hold.MaxSessionIDLength {
		return nil, hold.ErrSessionIDTooLong
	}
	if len(items) == 0 {
		return nil, hold.ErrNoItems
	}

	requested := make(map[uuid.UUID]int64, len(items))
	for _, line := range items {
		if line.ResourceID == uuid.Nil {
			return nil, hold.ErrNilResource
		}
		if line.Quantity <= 0 {
			return nil, hold.ErrInvalidQuantity
		}
		if _, dup := requested[line.ResourceID]; dup {
			return nil, hold.ErrDuplicateResource
		}
		requested[line.ResourceID] = line.Quantity
	}
	return requested, nil
}

func (r *reservationUseCaseImpl) Release(ctx context.Context, sessionID string) (bool, error) {
	var released bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, err := tx.Holds().DeleteSession(ctx, sessionID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		released = deleted > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return released, nil
}

func (r *reservationUseCaseImpl) Confirm(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	result := &ConfirmResult{SessionID: sessionID}
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Holds().SessionItems(ctx, sessionID, r.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(items) == 0 {
			return ErrSessionNotFound
		}
		if _, err := tx.Holds().DeleteSession(ctx, sessionID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, item := range items {
			result.Items = append(result.Items, ReservedItem{
				ResourceID:  item.ResourceID(),
				Quantity:    item.Quantity(),
				DisplayName: item.DisplayName(),
				DisplaySKU:  item.DisplaySKU(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reservationUseCaseImpl) Extend(ctx context.Context, sessionID string, additional time.Duration) (*time.Time, error) {
	if additional <= 0 {
		return nil, errs.Mark(errs.New("extension must be positive"), ErrDomainValidation)
	}

	var newExpiry *time.Time
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		current, err := tx.Holds().SessionExpiry(ctx, sessionID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if current == nil {
			return nil
		}

		until := current.Add(additional)
		if limit := now.Add(r.cfg.MaxExtension); until.After(limit) {
			until = limit
		}

		updated, err := tx.Holds().ExtendSession(ctx, sessionID, until, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if updated == 0 {
			return nil
		}
		newExpiry = &until
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newExpiry, nil
}

func (r *reservationUseCaseImpl) SweepExpired(ctx context.Context) (int64, error) {
	var swept int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		swept, err = tx.Holds().DeleteExpired(ctx, r.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return swept, nil
}
