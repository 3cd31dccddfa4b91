package response

import (
	"time"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/usecase/queries"
)

type BookingResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customerName"`
	CustomerEmail    string    `json:"customerEmail"`
	DestinationID    string    `json:"destinationId"`
	DestinationName  string    `json:"destinationName,omitempty"`
	DestinationImage string    `json:"destinationImage,omitempty"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	Guests           int       `json:"guests"`
	Duration         int       `json:"duration"`
	Status           string    `json:"status"`
	TotalPrice       float64   `json:"totalPrice"`
	ReferralCodeUsed *string   `json:"referralCodeUsed,omitempty"`
	Dangling         bool      `json:"dangling,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		DestinationID:    b.DestinationID,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		Guests:           b.Guests,
		Duration:         b.Duration,
		Status:           b.Status.String(),
		TotalPrice:       b.TotalPrice,
		ReferralCodeUsed: b.ReferralCodeUsed,
		CreatedAt:        b.CreatedAt,
	}
}

func FromBookingViews(views []queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i := range views {
		r := FromBooking(&views[i].Booking)
		if d := views[i].Destination; d != nil {
			r.DestinationName = d.Name
			r.DestinationImage = d.Image
		}
		r.Dangling = views[i].Dangling
		res[i] = r
	}
	return res
}
