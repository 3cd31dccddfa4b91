package repository

import (
	"context"
	"log/slog"
	"sync"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/favorite"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/domain/social"
	"genesis-storefront/internal/infra/document"
	"genesis-storefront/internal/infra/seed"
	"genesis-storefront/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// DocumentStore is the persistence port of the repository.
type DocumentStore interface {
	Save(ctx context.Context, key document.Key, v any) error
	Load(ctx context.Context, key document.Key, out any) (bool, error)
	Clear(ctx context.Context, key document.Key) error
}

// StateRepository owns the storefront collections and the active identity.
// Writers are serialised by mu. Every mutation persists the next value
// first and only then installs it in memory, so memory and the durable copy
// agree whenever a call returns, whether it succeeded or not.
type StateRepository struct {
	mu     sync.RWMutex
	store  DocumentStore
	logger *slog.Logger

	destinations []destination.Destination
	bookings     []booking.Booking
	socialLinks  []social.Link
	favorites    favorite.Set
	identity     *identity.Identity
	contact      social.Contact
}

// NewStateRepository loads every document, falling back to defaults when a
// document is absent or corrupt. Backend failures abort the load.
func NewStateRepository(ctx context.Context, store DocumentStore, defaults seed.Defaults, logger *slog.Logger) (*StateRepository, error) {
	r := &StateRepository{
		store:        store,
		logger:       logger,
		destinations: defaults.Destinations,
		bookings:     []booking.Booking{},
		socialLinks:  defaults.SocialLinks,
		favorites:    favorite.NewSet(),
		contact:      defaults.Contact,
	}

	var dests []destination.Destination
	if found, err := store.Load(ctx, document.KeyDestinations, &dests); err != nil {
		return nil, errs.Wrap(err, "load destinations")
	} else if found {
		r.destinations = dests
	}

	var bookings []booking.Booking
	if found, err := store.Load(ctx, document.KeyBookings, &bookings); err != nil {
		return nil, errs.Wrap(err, "load bookings")
	} else if found && bookings != nil {
		r.bookings = bookings
	}

	var links []social.Link
	if found, err := store.Load(ctx, document.KeySocialLinks, &links); err != nil {
		return nil, errs.Wrap(err, "load social links")
	} else if found {
		r.socialLinks = links
	}

	var favs []string
	if found, err := store.Load(ctx, document.KeyFavorites, &favs); err != nil {
		return nil, errs.Wrap(err, "load favorites")
	} else if found {
		r.favorites = favorite.NewSet(favs...)
	}

	var who identity.Identity
	if found, err := store.Load(ctx, document.KeyActiveUser, &who); err != nil {
		return nil, errs.Wrap(err, "load active user")
	} else if found {
		r.identity = &who
	}

	logger.Info("storefront state loaded",
		slog.Int("destinations", len(r.destinations)),
		slog.Int("bookings", len(r.bookings)),
		slog.Int("social_links", len(r.socialLinks)),
		slog.Int("favorites", r.favorites.Len()),
		slog.Bool("identity", r.identity != nil),
	)

	return r, nil
}

// deepCopy returns an independent copy of src so callers can never reach
// repository memory through a returned value.
func deepCopy[T any](src T) T {
	var dst T
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched types, which cannot happen for T to T
		panic(err)
	}
	return dst
}
