//go:build unit || e2e

package builder

import (
	"time"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/identity"
	reqdto "genesis-storefront/internal/handler/dto/request"
	"genesis-storefront/internal/pkg/clock"

	"github.com/google/uuid"
)

var DefaultNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	Destination  destination.Destination
	Customer     identity.Identity
	StartDate    string
	EndDate      string
	Guests       int
	ReferralCode *string
	Status       booking.Status
	Now          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Destination: NewDestinationBuilder().Build(),
		Customer:    NewIdentityBuilder().MustBuild(),
		StartDate:   "2026-07-01",
		EndDate:     "2026-07-06",
		Guests:      6,
		Status:      booking.StatusPending,
		Now:         DefaultNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithDestination(d destination.Destination) *BookingBuilder {
	b.Destination = d
	return b
}

func (b *BookingBuilder) WithCustomer(who identity.Identity) *BookingBuilder {
	b.Customer = who
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.Now = t
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStay(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	guests, err := booking.NewGuests(b.Guests)
	if err != nil {
		return nil, err
	}
	factory := booking.NewFactory(clock.NewFixedClock(b.Now), booking.NewDefaultPriceCalculator())
	return factory.CreateBooking(b.Destination, b.Customer, stay, guests, b.ReferralCode)
}

// BuildRecord skips the factory and yields a stored-shape booking with the
// configured status, for seeding repositories directly.
func (b *BookingBuilder) BuildRecord() booking.Booking {
	stay, err := booking.NewStay(b.StartDate, b.EndDate)
	duration := 1
	if err == nil {
		duration = stay.Days()
	}
	return booking.Booking{
		ID:               uuid.NewString(),
		CustomerName:     b.Customer.Name,
		CustomerEmail:    b.Customer.Email,
		DestinationID:    b.Destination.ID,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		Guests:           b.Guests,
		Duration:         duration,
		Status:           b.Status,
		TotalPrice:       b.Destination.PricePerDay * float64(duration*b.Guests),
		ReferralCodeUsed: b.ReferralCode,
		CreatedAt:        b.Now.UTC(),
	}
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	start, end, guests := b.StartDate, b.EndDate, b.Guests
	return reqdto.BookingRequest{
		DestinationID: b.Destination.ID,
		StartDate:     &start,
		EndDate:       &end,
		Guests:        &guests,
		ReferralCode:  b.ReferralCode,
	}
}
