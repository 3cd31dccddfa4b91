package request

import (
	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/social"
)

// Bulk replace bodies are whole collections. Record-level validation happens
// when the collection is encoded for storage.

type ReplaceDestinationsRequest []destination.Destination

type ReplaceBookingsRequest []booking.Booking

type ReplaceSocialLinksRequest []social.Link
