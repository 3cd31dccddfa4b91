package booking

import (
	"math"

	"genesis-storefront/internal/domain/destination"
)

type PriceCalculator interface {
	CalculateTotal(dest destination.Destination, stay Stay, guests Guests) float64
}

// DefaultPriceCalculator charges per day per guest and applies the
// destination's group tier once on the base amount.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) CalculateTotal(dest destination.Destination, stay Stay, guests Guests) float64 {
	base := dest.PricePerDay * float64(stay.Days()) * float64(guests.Value())
	return roundCents(applyGroupDiscount(base, dest.GroupTierPricing, guests.Value()))
}

func applyGroupDiscount(base float64, tier *destination.GroupTierPricing, guests int) float64 {
	if tier == nil || !tier.Applies(guests) {
		return base
	}
	result := base * (1 - tier.DiscountPercent/100)
	if result < 0 {
		result = 0
	}
	return result
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
