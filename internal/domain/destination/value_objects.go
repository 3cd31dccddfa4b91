package destination

// GroupTierPricing grants a percentage discount once a party reaches
// MinGuests.
type GroupTierPricing struct {
	MinGuests       int     `json:"minGuests" validate:"gte=2"`
	DiscountPercent float64 `json:"discountPercent" validate:"gte=0,lte=100"`
}

func NewGroupTierPricing(minGuests int, discountPercent float64) (GroupTierPricing, error) {
	g := GroupTierPricing{MinGuests: minGuests, DiscountPercent: discountPercent}
	if err := g.Validate(); err != nil {
		return GroupTierPricing{}, err
	}
	return g, nil
}

func (g GroupTierPricing) Validate() error {
	if g.MinGuests < 2 {
		return ErrInvalidGroupTier
	}
	if g.DiscountPercent < 0 || g.DiscountPercent > 100 {
		return ErrInvalidGroupTier
	}
	return nil
}

func (g GroupTierPricing) Applies(guests int) bool {
	return guests >= g.MinGuests
}
