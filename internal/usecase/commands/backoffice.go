package commands

import (
	"context"
	"log/slog"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/social"
	"genesis-storefront/internal/infra/document"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/shared"
)

//go:generate mockgen -source=backoffice.go -destination=../../../tests/mock/commands/backoffice.go -package=commandsmock

// BackOfficeCommands forwards whole-collection snapshots from the console.
// The console is trusted: there is no diffing and no per-record audit.
type BackOfficeCommands interface {
	ReplaceDestinations(ctx context.Context, all []destination.Destination) error
	ReplaceBookings(ctx context.Context, all []booking.Booking) error
	ReplaceSocialLinks(ctx context.Context, all []social.Link) error
	PurgeBooking(ctx context.Context, id string) error
}

type backOfficeUseCaseImpl struct {
	catalog  shared.CatalogWriter
	bookings shared.BookingWriter
	logger   *slog.Logger
}

func NewBackOfficeUseCase(catalog shared.CatalogWriter, bookings shared.BookingWriter, logger *slog.Logger) BackOfficeCommands {
	return &backOfficeUseCaseImpl{
		catalog:  catalog,
		bookings: bookings,
		logger:   logger,
	}
}

func (u *backOfficeUseCaseImpl) ReplaceDestinations(ctx context.Context, all []destination.Destination) error {
	if err := u.catalog.ReplaceDestinations(ctx, all); err != nil {
		return markReplaceErr(err)
	}
	u.logger.Info("destinations replaced", slog.Int("count", len(all)))
	return nil
}

func (u *backOfficeUseCaseImpl) ReplaceBookings(ctx context.Context, all []booking.Booking) error {
	if err := u.bookings.ReplaceBookings(ctx, all); err != nil {
		return markReplaceErr(err)
	}
	u.logger.Info("bookings replaced", slog.Int("count", len(all)))
	return nil
}

func (u *backOfficeUseCaseImpl) ReplaceSocialLinks(ctx context.Context, all []social.Link) error {
	if err := u.catalog.ReplaceSocialLinks(ctx, all); err != nil {
		return markReplaceErr(err)
	}
	u.logger.Info("social links replaced", slog.Int("count", len(all)))
	return nil
}

// PurgeBooking hard-deletes a ledger record. Absent ids are a no-op.
func (u *backOfficeUseCaseImpl) PurgeBooking(ctx context.Context, id string) error {
	if err := u.bookings.RemoveBooking(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	u.logger.Info("booking purged", slog.String("booking_id", id))
	return nil
}

func markReplaceErr(err error) error {
	if errs.Is(err, document.ErrEncode) {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return errs.Mark(err, errs.ErrStoreOperationFailed)
}
