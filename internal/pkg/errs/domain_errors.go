package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Reservation errors
	ErrSessionNotFound   = errors.New("session has no active hold")
	ErrCapacityExceeded  = errors.New("insufficient capacity")
	ErrReservationClosed = errors.New("reservation already released")

	// Ledger errors
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEntryNotFound     = errors.New("ledger entry not found")
	ErrReversalMismatch  = errors.New("reversal amount does not match original entry")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrConcurrencyConflict     = errors.New("concurrent update conflict")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
