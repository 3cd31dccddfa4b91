//go:build unit

package destination_test

import (
	"testing"

	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestDestinationMatches(t *testing.T) {
	d := builder.NewDestinationBuilder().Build()

	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query", query: "", want: true},
		{name: "whitespace query", query: "   ", want: true},
		{name: "name substring", query: "mara", want: true},
		{name: "name case insensitive", query: "MAASAI", want: true},
		{name: "tag match", query: "wildlife", want: true},
		{name: "partial tag", query: "lux", want: true},
		{name: "no match", query: "beach", want: false},
		{name: "description is not searched", query: "kenya", want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, d.Matches(c.query))
		})
	}
}

func TestSearchKeepsCatalogOrder(t *testing.T) {
	all := []destination.Destination{
		builder.NewDestinationBuilder().WithID("1").WithName("Maasai Mara Safari").Build(),
		builder.NewDestinationBuilder().WithID("2").WithName("Diani Beach Retreat").Build(),
		builder.NewDestinationBuilder().WithID("3").WithName("Amboseli Safari Camp").Build(),
	}

	got := destination.Search(all, "safari")
	if assert.Len(t, got, 3) {
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[2].ID)
	}

	got = destination.Search(all, "diani")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "2", got[0].ID)
	}
}

func TestDestinationValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, builder.NewDestinationBuilder().Build().Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		d := builder.NewDestinationBuilder().WithID("").Build()
		assert.ErrorIs(t, d.Validate(), destination.ErrInvalidDestination)
	})

	t.Run("negative price", func(t *testing.T) {
		d := builder.NewDestinationBuilder().WithPrice(-1).Build()
		assert.ErrorIs(t, d.Validate(), destination.ErrInvalidDestination)
	})

	t.Run("group tier bounds", func(t *testing.T) {
		_, err := destination.NewGroupTierPricing(1, 10)
		assert.ErrorIs(t, err, destination.ErrInvalidGroupTier)

		_, err = destination.NewGroupTierPricing(2, 101)
		assert.ErrorIs(t, err, destination.ErrInvalidGroupTier)

		tier, err := destination.NewGroupTierPricing(2, 0)
		assert.NoError(t, err)
		assert.True(t, tier.Applies(2))
		assert.False(t, tier.Applies(1))
	})
}
