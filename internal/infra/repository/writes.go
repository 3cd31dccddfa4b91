package repository

import (
	"context"
	"log/slog"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/domain/social"
	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/infra/document"
	"genesis-storefront/internal/pkg/errs"
)

func (r *StateRepository) ReplaceDestinations(ctx context.Context, all []destination.Destination) error {
	next := deepCopy(all)
	if next == nil {
		next = []destination.Destination{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Save(ctx, document.KeyDestinations, next); err != nil {
		return errs.Wrap(err, "replace destinations")
	}
	r.destinations = next
	return nil
}

func (r *StateRepository) ReplaceSocialLinks(ctx context.Context, all []social.Link) error {
	next := deepCopy(all)
	if next == nil {
		next = []social.Link{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Save(ctx, document.KeySocialLinks, next); err != nil {
		return errs.Wrap(err, "replace social links")
	}
	r.socialLinks = next
	return nil
}

func (r *StateRepository) ReplaceBookings(ctx context.Context, all []booking.Booking) error {
	next := deepCopy(all)
	if next == nil {
		next = []booking.Booking{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Save(ctx, document.KeyBookings, next); err != nil {
		return errs.Wrap(err, "replace bookings")
	}
	r.bookings = next
	return nil
}

// AddBooking prepends b so the collection stays most-recent-first.
func (r *StateRepository) AddBooking(ctx context.Context, b booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]booking.Booking, 0, len(r.bookings)+1)
	next = append(next, deepCopy(b))
	next = append(next, r.bookings...)

	if err := r.store.Save(ctx, document.KeyBookings, next); err != nil {
		return errs.Wrap(err, "add booking")
	}
	r.bookings = next
	return nil
}

// UpdateBooking applies mutate to the booking with id and persists the result.
// A missing id is an infra.KindNotFound error; an error from mutate is
// returned untouched and nothing is written.
func (r *StateRepository) UpdateBooking(ctx context.Context, id string, mutate func(booking.Booking) (booking.Booking, error)) (booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOfBooking(r.bookings, id)
	if i < 0 {
		return booking.Booking{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking "+id, nil)
	}

	updated, err := mutate(deepCopy(r.bookings[i]))
	if err != nil {
		return booking.Booking{}, err
	}
	updated.ID = id

	next := make([]booking.Booking, len(r.bookings))
	copy(next, r.bookings)
	next[i] = updated

	if err := r.store.Save(ctx, document.KeyBookings, next); err != nil {
		return booking.Booking{}, errs.Wrap(err, "update booking")
	}
	r.bookings = next
	return deepCopy(updated), nil
}

// RemoveBooking deletes the booking record outright. Removing an absent id
// is a no-op.
func (r *StateRepository) RemoveBooking(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOfBooking(r.bookings, id)
	if i < 0 {
		return nil
	}

	next := make([]booking.Booking, 0, len(r.bookings)-1)
	next = append(next, r.bookings[:i]...)
	next = append(next, r.bookings[i+1:]...)

	if err := r.store.Save(ctx, document.KeyBookings, next); err != nil {
		return errs.Wrap(err, "remove booking")
	}
	r.bookings = next
	return nil
}

// ToggleFavorite flips membership of id and reports whether it is now a
// favorite.
func (r *StateRepository) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.favorites.Toggled(id)
	if err := r.store.Save(ctx, document.KeyFavorites, next.IDs()); err != nil {
		return r.favorites.Has(id), errs.Wrap(err, "toggle favorite")
	}
	r.favorites = next
	return next.Has(id), nil
}

// SetIdentity installs who as the active identity. A nil identity logs the
// customer out and purges the persisted record.
func (r *StateRepository) SetIdentity(ctx context.Context, who *identity.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if who == nil {
		if err := r.store.Clear(ctx, document.KeyActiveUser); err != nil {
			return errs.Wrap(err, "clear identity")
		}
		if r.identity != nil {
			r.logger.Info("identity cleared", slog.String("email", r.identity.Email))
		}
		r.identity = nil
		return nil
	}

	next := deepCopy(*who)
	if err := r.store.Save(ctx, document.KeyActiveUser, next); err != nil {
		return errs.Wrap(err, "set identity")
	}
	r.identity = &next
	return nil
}
