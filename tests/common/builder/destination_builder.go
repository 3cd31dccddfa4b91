//go:build unit || e2e

package builder

import (
	"genesis-storefront/internal/domain/destination"
)

type DestinationBuilder struct {
	ID             string
	Name           string
	Country        string
	PricePerDay    float64
	Rating         float64
	Tags           []string
	GroupTier      *destination.GroupTierPricing
	IsAllInclusive bool
}

func NewDestinationBuilder() *DestinationBuilder {
	return &DestinationBuilder{
		ID:          "1",
		Name:        "Maasai Mara Safari",
		Country:     "Kenya",
		PricePerDay: 250,
		Rating:      4.9,
		Tags:        []string{"Wildlife", "Safari", "Luxury"},
		GroupTier: &destination.GroupTierPricing{
			MinGuests:       5,
			DiscountPercent: 15,
		},
		IsAllInclusive: true,
	}
}

func (d *DestinationBuilder) With(mutate func(*DestinationBuilder)) *DestinationBuilder {
	mutate(d)
	return d
}

func (d *DestinationBuilder) WithID(id string) *DestinationBuilder {
	d.ID = id
	return d
}

func (d *DestinationBuilder) WithName(name string) *DestinationBuilder {
	d.Name = name
	return d
}

func (d *DestinationBuilder) WithPrice(pricePerDay float64) *DestinationBuilder {
	d.PricePerDay = pricePerDay
	return d
}

func (d *DestinationBuilder) WithoutGroupTier() *DestinationBuilder {
	d.GroupTier = nil
	return d
}

// Build methods
func (d *DestinationBuilder) Build() destination.Destination {
	var tier *destination.GroupTierPricing
	if d.GroupTier != nil {
		t := *d.GroupTier
		tier = &t
	}
	return destination.Destination{
		ID:               d.ID,
		Name:             d.Name,
		Country:          d.Country,
		Description:      d.Name + " in " + d.Country,
		PricePerDay:      d.PricePerDay,
		Image:            "https://images.example.com/" + d.ID + ".jpg",
		Gallery:          []string{"https://images.example.com/" + d.ID + "-1.jpg"},
		Rating:           d.Rating,
		Tags:             append([]string(nil), d.Tags...),
		Attractions:      []string{"Game drives"},
		GroupTierPricing: tier,
		IsAllInclusive:   d.IsAllInclusive,
	}
}
