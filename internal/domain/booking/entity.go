package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate      = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidDuration  = errors.New("stay must last at least one day")
	ErrInvalidGuests    = errors.New("guests must be at least one")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotPending       = errors.New("only pending bookings can be confirmed")
)

// Booking is a reservation of one destination for a stay. The JSON shape is
// the persisted document format.
type Booking struct {
	ID               string    `json:"id" validate:"required"`
	CustomerName     string    `json:"customerName" validate:"required"`
	CustomerEmail    string    `json:"customerEmail" validate:"required,email"`
	DestinationID    string    `json:"destinationId" validate:"required"`
	StartDate        string    `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string    `json:"endDate" validate:"required,datetime=2006-01-02"`
	Guests           int       `json:"guests" validate:"gte=1"`
	Duration         int       `json:"duration" validate:"gte=1"`
	Status           Status    `json:"status" validate:"oneof=pending confirmed cancelled"`
	TotalPrice       float64   `json:"totalPrice" validate:"gte=0"`
	ReferralCodeUsed *string   `json:"referralCodeUsed,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// IsActive is false once the booking has been cancelled.
func (b Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// OwnedBy compares emails exactly; addresses differing only in case are
// different customers.
func (b Booking) OwnedBy(email string) bool {
	return b.CustomerEmail == email
}

func (b Booking) Confirm() (Booking, error) {
	if b.Status != StatusPending {
		return b, ErrNotPending
	}
	b.Status = StatusConfirmed
	return b, nil
}

func (b Booking) Cancel() (Booking, error) {
	if b.Status == StatusCancelled {
		return b, ErrAlreadyCancelled
	}
	b.Status = StatusCancelled
	return b, nil
}
