package commands

import (
	"context"
	"log/slog"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type BookingCommands interface {
	CreateBooking(ctx context.Context, destinationID string, who identity.Identity, draft shared.BookingDraft) (*booking.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	CancelOwnBooking(ctx context.Context, id string, who identity.Identity) error
	ConfirmBooking(ctx context.Context, id string) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	destinations shared.DestinationReader
	bookings     shared.BookingReader
	writer       shared.BookingWriter
	factory      *booking.Factory
	logger       *slog.Logger
}

func NewBookingUseCase(
	destinations shared.DestinationReader,
	bookings shared.BookingReader,
	writer shared.BookingWriter,
	factory *booking.Factory,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		destinations: destinations,
		bookings:     bookings,
		writer:       writer,
		factory:      factory,
		logger:       logger,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	destinationID string,
	who identity.Identity,
	draft shared.BookingDraft,
) (*booking.Booking, error) {
	dest, ok := u.destinations.FindDestination(destinationID)
	if !ok {
		return nil, errs.Mark(errs.New("destination "+destinationID+" does not exist"), errs.ErrDestinationNotFound)
	}

	stay, err := booking.NewStay(draft.StartDate, draft.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBookingInput)
	}
	guests, err := booking.NewGuests(draft.Guests)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBookingInput)
	}

	created, err := u.factory.CreateBooking(dest, who, stay, guests, draft.ReferralCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.writer.AddBooking(ctx, *created); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	u.logger.Info("booking created",
		slog.String("booking_id", created.ID),
		slog.String("destination_id", created.DestinationID),
		slog.Int("guests", created.Guests),
		slog.Int("duration", created.Duration),
		slog.Float64("total_price", created.TotalPrice),
	)
	return created, nil
}

// CancelBooking moves the booking to cancelled. The record stays in the
// ledger; active listings stop returning it. Unknown or already cancelled
// ids are a no-op.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, id string) error {
	current, ok := u.bookings.FindBooking(id)
	if !ok || !current.IsActive() {
		return nil
	}

	_, err := u.writer.UpdateBooking(ctx, id, booking.Booking.Cancel)
	switch {
	case err == nil:
		u.logger.Info("booking cancelled", slog.String("booking_id", id))
		return nil
	case infra.IsKind(err, infra.KindNotFound), errs.Is(err, booking.ErrAlreadyCancelled):
		return nil
	default:
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
}

// CancelOwnBooking cancels on behalf of a customer. A booking owned by
// someone else is treated like an unknown id: nothing changes and no error
// is returned.
func (u *bookingUseCaseImpl) CancelOwnBooking(ctx context.Context, id string, who identity.Identity) error {
	current, ok := u.bookings.FindBooking(id)
	if !ok {
		return nil
	}
	if !current.OwnedBy(who.Email) {
		u.logger.Warn("ignoring cancel of a booking owned by another customer", slog.String("booking_id", id))
		return nil
	}
	return u.CancelBooking(ctx, id)
}

func (u *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, id string) (*booking.Booking, error) {
	updated, err := u.writer.UpdateBooking(ctx, id, booking.Booking.Confirm)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		case errs.Is(err, booking.ErrNotPending):
			return nil, errs.Mark(err, errs.ErrInvalidTransition)
		default:
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}
	u.logger.Info("booking confirmed", slog.String("booking_id", id))
	return &updated, nil
}
