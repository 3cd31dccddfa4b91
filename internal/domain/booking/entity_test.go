//go:build unit

package booking_test

import (
	"testing"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		_, parseErr := uuid.Parse(actual.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, booking.StatusPending, actual.Status)
		assert.Equal(t, builder.DefaultNow, actual.CreatedAt)
		assert.Equal(t, "amani@example.com", actual.CustomerEmail)
		assert.Equal(t, "Amani Wanjiru", actual.CustomerName)
		assert.Equal(t, "1", actual.DestinationID)
		assert.Equal(t, 5, actual.Duration)
		assert.Equal(t, 6, actual.Guests)
		assert.Equal(t, 6375.0, actual.TotalPrice)
		assert.Nil(t, actual.ReferralCodeUsed)
	})

	t.Run("stay validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single night stay",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-01", "2026-07-02") },
			},
			{
				name:   "stay across month boundary",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-30", "2026-08-02") },
			},
			{
				name:   "same day start and end",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-01", "2026-07-01") },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-05", "2026-07-01") },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "malformed start date",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("01/07/2026", "2026-07-05") },
				errIs:  booking.ErrInvalidDate,
			},
			{
				name:   "empty end date",
				mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-01", "") },
				errIs:  booking.ErrInvalidDate,
			},
		})
	})

	t.Run("guest validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single guest",
				mutate: func(b *builder.BookingBuilder) { b.WithGuests(1) },
			},
			{
				name:   "zero guests",
				mutate: func(b *builder.BookingBuilder) { b.WithGuests(0) },
				errIs:  booking.ErrInvalidGuests,
			},
			{
				name:   "negative guests",
				mutate: func(b *builder.BookingBuilder) { b.WithGuests(-2) },
				errIs:  booking.ErrInvalidGuests,
			},
		})
	})

	t.Run("referral code is recorded", func(t *testing.T) {
		code := "KARIBU10"
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ReferralCode = &code }).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual.ReferralCodeUsed)
		assert.Equal(t, code, *actual.ReferralCodeUsed)
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b1, err1 := builder.NewBookingBuilder().BuildDomain()
		b2, err2 := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, b1.ID, b2.ID)
	})
}

func TestBookingTransitions(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildRecord()

		confirmed, err := b.Confirm()
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, confirmed.Status)
		assert.Equal(t, booking.StatusPending, b.Status, "receiver is a value and stays pending")
	})

	t.Run("confirmed cannot be confirmed again", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildRecord()

		_, err := b.Confirm()
		assert.ErrorIs(t, err, booking.ErrNotPending)
	})

	t.Run("any active state can be cancelled", func(t *testing.T) {
		for _, s := range []booking.Status{booking.StatusPending, booking.StatusConfirmed} {
			b := builder.NewBookingBuilder().WithStatus(s).BuildRecord()

			cancelled, err := b.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, booking.StatusCancelled, cancelled.Status)
			assert.False(t, cancelled.IsActive())
		}
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildRecord()

		_, err := b.Cancel()
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		_, err = b.Confirm()
		assert.ErrorIs(t, err, booking.ErrNotPending)
	})

	t.Run("ownership requires an exact email match", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildRecord()
		assert.True(t, b.OwnedBy("amani@example.com"))
		assert.False(t, b.OwnedBy("AMANI@example.com"))
		assert.False(t, b.OwnedBy("other@example.com"))
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusPending.IsValid())
	assert.True(t, booking.StatusCancelled.IsValid())
	assert.False(t, booking.Status("canceled").IsValid())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
