//go:build unit

package commands_test

import (
	"context"
	"testing"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/infra/document"
	"genesis-storefront/internal/infra/repository"
	"genesis-storefront/internal/infra/seed"
	"genesis-storefront/internal/pkg/clock"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/pkg/ptr"
	"genesis-storefront/internal/usecase/commands"
	"genesis-storefront/internal/usecase/shared"
	"genesis-storefront/tests/common/builder"
	"genesis-storefront/tests/common/statetest"
	kvmock "genesis-storefront/tests/mock/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	fixture  *statetest.Fixture
	commands commands.BookingCommands
	customer identity.Identity
}

func newBookingCommands(repo *repository.StateRepository, f *statetest.Fixture) commands.BookingCommands {
	factory := booking.NewFactory(clock.NewFixedClock(builder.DefaultNow), booking.NewDefaultPriceCalculator())
	return commands.NewBookingUseCase(repo, repo, repo, factory, f.Logger)
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fixture = statetest.NewFixture(s.T())
	s.commands = newBookingCommands(s.fixture.Repo, s.fixture)
	s.customer = builder.NewIdentityBuilder().MustBuild()
}

func (s *BookingCommandsTestSuite) draft() shared.BookingDraft {
	return shared.BookingDraft{StartDate: "2026-07-01", EndDate: "2026-07-06", Guests: 6}
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("prices the stay and applies the group tier", func() {
		created, err := s.commands.CreateBooking(s.ctx, "1", s.customer, s.draft())
		s.Require().NoError(err)

		s.Equal(5, created.Duration)
		s.Equal(6, created.Guests)
		s.InDelta(6375.0, created.TotalPrice, 0.001)
		s.Equal(booking.StatusPending, created.Status)
		s.Equal(s.customer.Email, created.CustomerEmail)
		s.Equal(builder.DefaultNow, created.CreatedAt)
	})

	s.Run("newest booking is listed first", func() {
		second, err := s.commands.CreateBooking(s.ctx, "2", s.customer, s.draft())
		s.Require().NoError(err)

		listed := s.fixture.Repo.ListBookings()
		s.Require().Len(listed, 2)
		s.Equal(second.ID, listed[0].ID)
	})

	s.Run("referral code is recorded", func() {
		draft := s.draft()
		draft.ReferralCode = ptr.Of("KARIBU")
		created, err := s.commands.CreateBooking(s.ctx, "3", s.customer, draft)
		s.Require().NoError(err)
		s.Equal("KARIBU", ptr.Deref(created.ReferralCodeUsed))
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookingRejections() {
	cases := []struct {
		name          string
		destinationID string
		mutate        func(*shared.BookingDraft)
		errIs         error
	}{
		{"unknown destination", "missing", func(*shared.BookingDraft) {}, errs.ErrDestinationNotFound},
		{"zero guests", "1", func(d *shared.BookingDraft) { d.Guests = 0 }, errs.ErrInvalidBookingInput},
		{"same day stay", "1", func(d *shared.BookingDraft) { d.EndDate = d.StartDate }, errs.ErrInvalidBookingInput},
		{"end before start", "1", func(d *shared.BookingDraft) { d.EndDate = "2026-06-20" }, errs.ErrInvalidBookingInput},
		{"malformed date", "1", func(d *shared.BookingDraft) { d.StartDate = "07/01/2026" }, errs.ErrInvalidBookingInput},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			draft := s.draft()
			tc.mutate(&draft)

			created, err := s.commands.CreateBooking(s.ctx, tc.destinationID, s.customer, draft)
			s.Nil(created)
			s.True(errs.Is(err, tc.errIs), "got %v", err)
			s.Empty(s.fixture.Repo.Ledger())
		})
	}
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	created, err := s.commands.CreateBooking(s.ctx, "1", s.customer, s.draft())
	s.Require().NoError(err)

	s.Run("cancelled booking leaves active listings", func() {
		s.Require().NoError(s.commands.CancelBooking(s.ctx, created.ID))

		s.Empty(s.fixture.Repo.ListBookings())
		ledger := s.fixture.Repo.Ledger()
		s.Require().Len(ledger, 1)
		s.Equal(booking.StatusCancelled, ledger[0].Status)
	})

	s.Run("cancelling again is a no-op", func() {
		s.NoError(s.commands.CancelBooking(s.ctx, created.ID))
	})

	s.Run("unknown id is a no-op", func() {
		s.NoError(s.commands.CancelBooking(s.ctx, "does-not-exist"))
	})

	s.Run("cancellation survives a restart", func() {
		reloaded := s.fixture.Reload(s.T())
		s.Empty(reloaded.ListBookings())
		s.Len(reloaded.Ledger(), 1)
	})
}

func (s *BookingCommandsTestSuite) TestCancelOwnBooking() {
	created, err := s.commands.CreateBooking(s.ctx, "1", s.customer, s.draft())
	s.Require().NoError(err)

	s.Run("another customer's booking looks like an unknown id", func() {
		stranger := builder.NewIdentityBuilder().WithEmail("other@example.com").MustBuild()
		s.NoError(s.commands.CancelOwnBooking(s.ctx, created.ID, stranger))
		s.NoError(s.commands.CancelOwnBooking(s.ctx, "does-not-exist", stranger))
		s.Len(s.fixture.Repo.ListBookings(), 1)
	})

	s.Run("an email differing only in case is another customer", func() {
		other := s.customer
		other.Email = "AMANI@example.com"
		s.NoError(s.commands.CancelOwnBooking(s.ctx, created.ID, other))
		s.Len(s.fixture.Repo.ListBookings(), 1)
	})

	s.Run("the owner cancels", func() {
		s.NoError(s.commands.CancelOwnBooking(s.ctx, created.ID, s.customer))
		s.Empty(s.fixture.Repo.ListBookings())
	})
}

func (s *BookingCommandsTestSuite) TestConfirmBooking() {
	created, err := s.commands.CreateBooking(s.ctx, "1", s.customer, s.draft())
	s.Require().NoError(err)

	s.Run("pending becomes confirmed", func() {
		confirmed, err := s.commands.ConfirmBooking(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, confirmed.Status)
	})

	s.Run("confirming twice is an invalid transition", func() {
		_, err := s.commands.ConfirmBooking(s.ctx, created.ID)
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})

	s.Run("unknown id is not found", func() {
		_, err := s.commands.ConfirmBooking(s.ctx, "does-not-exist")
		s.True(errs.Is(err, errs.ErrBookingNotFound))
	})
}

func TestCreateBookingStoreFailure(t *testing.T) {
	ctx := context.Background()
	logger := statetest.DiscardLogger()

	ctrl := gomock.NewController(t)
	backend := kvmock.NewMockBackend(ctrl)
	notFound := infra.RepositoryError{Kind: infra.KindNotFound}
	backend.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, notFound).Times(len(document.AllKeys))
	backend.EXPECT().Put(gomock.Any(), "bookings", gomock.Any()).Return(assert.AnError)

	repo, err := repository.NewStateRepository(ctx, document.NewStore(backend, logger), seed.MustLoad(), logger)
	require.NoError(t, err)

	factory := booking.NewFactory(clock.NewFixedClock(builder.DefaultNow), booking.NewDefaultPriceCalculator())
	uc := commands.NewBookingUseCase(repo, repo, repo, factory, logger)

	who := builder.NewIdentityBuilder().MustBuild()
	created, err := uc.CreateBooking(ctx, "1", who, shared.BookingDraft{StartDate: "2026-07-01", EndDate: "2026-07-03", Guests: 2})

	assert.Nil(t, created)
	assert.True(t, errs.Is(err, errs.ErrStoreOperationFailed))
	assert.Empty(t, repo.Ledger())
}
