package queries

import (
	"log/slog"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

// BookingView joins a booking with its destination. Destination is nil and
// Dangling is true when the destination no longer exists.
type BookingView struct {
	Booking     booking.Booking          `json:"booking"`
	Destination *destination.Destination `json:"destination,omitempty"`
	Dangling    bool                     `json:"dangling"`
}

type DestinationStat struct {
	DestinationID string  `json:"destinationId"`
	Name          string  `json:"name"`
	Bookings      int     `json:"bookings"`
	Revenue       float64 `json:"revenue"`
}

// LedgerSummary is the back-office analytics view.
type LedgerSummary struct {
	Total         int               `json:"total"`
	Pending       int               `json:"pending"`
	Confirmed     int               `json:"confirmed"`
	Cancelled     int               `json:"cancelled"`
	Revenue       float64           `json:"revenue"`
	Dangling      int               `json:"dangling"`
	ByDestination []DestinationStat `json:"byDestination"`
}

type BookingQueries interface {
	ListForCustomer(who identity.Identity) []BookingView
	ListLedger() []BookingView
	Summary() LedgerSummary
}

type bookingQueriesImpl struct {
	destinations shared.DestinationReader
	bookings     shared.BookingReader
	logger       *slog.Logger
}

func NewBookingQueries(destinations shared.DestinationReader, bookings shared.BookingReader, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{
		destinations: destinations,
		bookings:     bookings,
		logger:       logger,
	}
}

// ListForCustomer returns who's active bookings, most recent first. Bookings
// whose destination is gone cannot be rendered and are left out.
func (q *bookingQueriesImpl) ListForCustomer(who identity.Identity) []BookingView {
	index := q.destinationIndex()
	out := []BookingView{}
	for _, b := range q.bookings.ListBookings() {
		if !b.OwnedBy(who.Email) {
			continue
		}
		view := join(b, index)
		if view.Dangling {
			q.logger.Warn("skipping booking with unknown destination",
				slog.String("booking_id", b.ID),
				slog.String("destination_id", b.DestinationID),
			)
			continue
		}
		out = append(out, view)
	}
	return out
}

// ListLedger returns every booking for staff, flagging dangling ones rather
// than dropping them.
func (q *bookingQueriesImpl) ListLedger() []BookingView {
	index := q.destinationIndex()
	ledger := q.bookings.Ledger()
	out := make([]BookingView, 0, len(ledger))
	for _, b := range ledger {
		out = append(out, join(b, index))
	}
	return out
}

func (q *bookingQueriesImpl) Summary() LedgerSummary {
	index := q.destinationIndex()
	summary := LedgerSummary{ByDestination: []DestinationStat{}}
	stats := map[string]*DestinationStat{}
	var order []string

	for _, b := range q.bookings.Ledger() {
		summary.Total++
		switch b.Status {
		case booking.StatusPending:
			summary.Pending++
		case booking.StatusConfirmed:
			summary.Confirmed++
		case booking.StatusCancelled:
			summary.Cancelled++
		}

		d, ok := index[b.DestinationID]
		if !ok {
			summary.Dangling++
		}
		if !b.IsActive() {
			continue
		}
		summary.Revenue += b.TotalPrice

		st, seen := stats[b.DestinationID]
		if !seen {
			st = &DestinationStat{DestinationID: b.DestinationID}
			if ok {
				st.Name = d.Name
			}
			stats[b.DestinationID] = st
			order = append(order, b.DestinationID)
		}
		st.Bookings++
		st.Revenue += b.TotalPrice
	}

	for _, id := range order {
		summary.ByDestination = append(summary.ByDestination, *stats[id])
	}
	return summary
}

func (q *bookingQueriesImpl) destinationIndex() map[string]destination.Destination {
	all := q.destinations.ListDestinations()
	index := make(map[string]destination.Destination, len(all))
	for _, d := range all {
		index[d.ID] = d
	}
	return index
}

func join(b booking.Booking, index map[string]destination.Destination) BookingView {
	d, ok := index[b.DestinationID]
	if !ok {
		return BookingView{Booking: b, Dangling: true}
	}
	return BookingView{Booking: b, Destination: &d}
}
