package booking

import (
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking builds a pending booking for who. The destination must be
// the resolved catalog entry, not just an id.
func (f *Factory) CreateBooking(
	dest destination.Destination,
	who identity.Identity,
	stay Stay,
	guests Guests,
	referralCode *string,
) (*Booking, error) {
	total := f.PriceCalculator.CalculateTotal(dest, stay, guests)
	if total < 0 {
		return nil, ErrNegativePrice
	}

	var referral *string
	if referralCode != nil && *referralCode != "" {
		code := *referralCode
		referral = &code
	}

	return &Booking{
		ID:               uuid.NewString(),
		CustomerName:     who.Name,
		CustomerEmail:    who.Email,
		DestinationID:    dest.ID,
		StartDate:        stay.StartDate(),
		EndDate:          stay.EndDate(),
		Guests:           guests.Value(),
		Duration:         stay.Days(),
		Status:           StatusPending,
		TotalPrice:       total,
		ReferralCodeUsed: referral,
		CreatedAt:        f.Clock.Now(),
	}, nil
}
