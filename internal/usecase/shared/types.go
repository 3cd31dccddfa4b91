package shared

// BookingDraft carries the customer's stay details for a booking request.
type BookingDraft struct {
	StartDate    string
	EndDate      string
	Guests       int
	ReferralCode *string
}
