package repository

import (
	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/favorite"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/domain/social"
)

func (r *StateRepository) ListDestinations() []destination.Destination {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return deepCopy(r.destinations)
}

func (r *StateRepository) FindDestination(id string) (destination.Destination, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.destinations {
		if d.ID == id {
			return deepCopy(d), true
		}
	}
	return destination.Destination{}, false
}

// ListBookings returns active bookings, most recent first.
func (r *StateRepository) ListBookings() []booking.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if b.IsActive() {
			out = append(out, b)
		}
	}
	return deepCopy(out)
}

// Ledger returns every booking including cancelled history.
func (r *StateRepository) Ledger() []booking.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return deepCopy(r.bookings)
}

func (r *StateRepository) FindBooking(id string) (booking.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := indexOfBooking(r.bookings, id); i >= 0 {
		return deepCopy(r.bookings[i]), true
	}
	return booking.Booking{}, false
}

func (r *StateRepository) ListSocialLinks() []social.Link {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return deepCopy(r.socialLinks)
}

func (r *StateRepository) Favorites() favorite.Set {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.favorites.Clone()
}

func (r *StateRepository) CurrentIdentity() *identity.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.identity == nil {
		return nil
	}
	who := deepCopy(*r.identity)
	return &who
}

func (r *StateRepository) Contact() social.Contact {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.contact
}

func indexOfBooking(all []booking.Booking, id string) int {
	for i, b := range all {
		if b.ID == id {
			return i
		}
	}
	return -1
}
