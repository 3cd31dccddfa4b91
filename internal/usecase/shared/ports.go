package shared

import (
	"context"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/favorite"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/domain/social"
)

// Read side of the storefront state.

type DestinationReader interface {
	ListDestinations() []destination.Destination
	FindDestination(id string) (destination.Destination, bool)
}

type BookingReader interface {
	ListBookings() []booking.Booking
	Ledger() []booking.Booking
	FindBooking(id string) (booking.Booking, bool)
}

type StorefrontReader interface {
	ListSocialLinks() []social.Link
	Favorites() favorite.Set
	Contact() social.Contact
}

// Write side of the storefront state.

type BookingWriter interface {
	AddBooking(ctx context.Context, b booking.Booking) error
	UpdateBooking(ctx context.Context, id string, mutate func(booking.Booking) (booking.Booking, error)) (booking.Booking, error)
	RemoveBooking(ctx context.Context, id string) error
	ReplaceBookings(ctx context.Context, all []booking.Booking) error
}

type CatalogWriter interface {
	ReplaceDestinations(ctx context.Context, all []destination.Destination) error
	ReplaceSocialLinks(ctx context.Context, all []social.Link) error
}

type FavoriteWriter interface {
	ToggleFavorite(ctx context.Context, id string) (bool, error)
}

type IdentityStore interface {
	CurrentIdentity() *identity.Identity
	SetIdentity(ctx context.Context, who *identity.Identity) error
}

// StateRepository is everything the storefront state offers.
type StateRepository interface {
	DestinationReader
	BookingReader
	StorefrontReader
	BookingWriter
	CatalogWriter
	FavoriteWriter
	IdentityStore
}
