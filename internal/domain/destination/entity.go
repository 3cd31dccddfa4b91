package destination

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDestination = errors.New("invalid destination")
	ErrInvalidGroupTier   = errors.New("invalid group tier pricing")
)

// Destination is a bookable catalog entry.
type Destination struct {
	ID               string            `json:"id" validate:"required"`
	Name             string            `json:"name" validate:"required"`
	Country          string            `json:"country"`
	Description      string            `json:"description"`
	PricePerDay      float64           `json:"pricePerDay" validate:"gte=0"`
	Image            string            `json:"image"`
	Gallery          []string          `json:"gallery"`
	Rating           float64           `json:"rating" validate:"gte=0,lte=5"`
	Tags             []string          `json:"tags"`
	Attractions      []string          `json:"attractions"`
	GroupTierPricing *GroupTierPricing `json:"groupTierPricing,omitempty" validate:"omitempty"`
	IsAllInclusive   bool              `json:"isAllInclusive,omitempty"`
}

func (d Destination) Validate() error {
	if strings.TrimSpace(d.ID) == "" || strings.TrimSpace(d.Name) == "" {
		return ErrInvalidDestination
	}
	if d.PricePerDay < 0 {
		return ErrInvalidDestination
	}
	if d.GroupTierPricing != nil {
		return d.GroupTierPricing.Validate()
	}
	return nil
}

// Matches reports whether the query is a case-insensitive substring of the
// name or of any tag. The empty query matches every destination.
func (d Destination) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Name), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Search keeps catalog order.
func Search(all []Destination, query string) []Destination {
	out := make([]Destination, 0, len(all))
	for _, d := range all {
		if d.Matches(query) {
			out = append(out, d)
		}
	}
	return out
}
