package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Catalog errors
	ErrDestinationNotFound = errors.New("destination not found")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidBookingInput = errors.New("invalid booking input")
	ErrInvalidTransition   = errors.New("invalid booking status transition")

	// Identity and access errors
	ErrInvalidIdentity    = errors.New("invalid identity")
	ErrIdentityRequired   = errors.New("identity required")
	ErrInvalidPasscode    = errors.New("invalid staff passcode")
	ErrNotInBackOffice    = errors.New("back-office view not entered")
	ErrStaffSessionNeeded = errors.New("staff session required")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
