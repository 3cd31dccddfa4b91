//go:build unit

package queries_test

import (
	"context"
	"testing"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/usecase/queries"
	"genesis-storefront/tests/common/builder"
	"genesis-storefront/tests/common/statetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	f := statetest.NewFixture(t)
	q := queries.NewBookingQueries(f.Repo, f.Repo, f.Logger)

	amani := builder.NewIdentityBuilder().MustBuild()
	other := builder.NewIdentityBuilder().WithEmail("wanjiku@example.com").WithName("Wanjiku").MustBuild()
	orphan := builder.NewDestinationBuilder().WithID("99").Build()

	mine := builder.NewBookingBuilder().WithCustomer(amani).BuildRecord()
	mineConfirmed := builder.NewBookingBuilder().WithCustomer(amani).WithStatus(booking.StatusConfirmed).BuildRecord()
	mineCancelled := builder.NewBookingBuilder().WithCustomer(amani).WithStatus(booking.StatusCancelled).BuildRecord()
	mineDangling := builder.NewBookingBuilder().WithCustomer(amani).WithDestination(orphan).BuildRecord()
	theirs := builder.NewBookingBuilder().WithCustomer(other).BuildRecord()

	require.NoError(t, f.Repo.ReplaceBookings(ctx, []booking.Booking{
		mine, mineConfirmed, mineCancelled, mineDangling, theirs,
	}))

	t.Run("customer sees own active bookings with destinations", func(t *testing.T) {
		views := q.ListForCustomer(amani)

		require.Len(t, views, 2)
		assert.Equal(t, mine.ID, views[0].Booking.ID)
		assert.Equal(t, mineConfirmed.ID, views[1].Booking.ID)
		for _, v := range views {
			require.NotNil(t, v.Destination)
			assert.Equal(t, "Maasai Mara Safari", v.Destination.Name)
			assert.False(t, v.Dangling)
		}
	})

	t.Run("ledger flags dangling bookings instead of dropping them", func(t *testing.T) {
		views := q.ListLedger()

		require.Len(t, views, 5)
		assert.True(t, views[3].Dangling)
		assert.Nil(t, views[3].Destination)
	})

	t.Run("summary counts statuses and active revenue", func(t *testing.T) {
		summary := q.Summary()

		assert.Equal(t, 5, summary.Total)
		assert.Equal(t, 3, summary.Pending)
		assert.Equal(t, 1, summary.Confirmed)
		assert.Equal(t, 1, summary.Cancelled)
		assert.Equal(t, 1, summary.Dangling)

		expected := mine.TotalPrice + mineConfirmed.TotalPrice + mineDangling.TotalPrice + theirs.TotalPrice
		assert.InDelta(t, expected, summary.Revenue, 0.001)

		require.Len(t, summary.ByDestination, 2)
		assert.Equal(t, "1", summary.ByDestination[0].DestinationID)
		assert.Equal(t, 3, summary.ByDestination[0].Bookings)
		assert.Equal(t, "99", summary.ByDestination[1].DestinationID)
		assert.Empty(t, summary.ByDestination[1].Name)
	})
}
