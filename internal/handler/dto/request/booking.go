package request

import (
	"strings"

	"genesis-storefront/internal/pkg/ptr"
	"genesis-storefront/internal/usecase/shared"
)

// BookingRequest either selects a destination (no stay details) or books it.
type BookingRequest struct {
	DestinationID string  `json:"destinationId" binding:"required"`
	StartDate     *string `json:"startDate,omitempty" binding:"required_with=EndDate,omitempty,datetime=2006-01-02"`
	EndDate       *string `json:"endDate,omitempty" binding:"required_with=StartDate,omitempty,datetime=2006-01-02"`
	Guests        *int    `json:"guests,omitempty" binding:"omitempty,min=1,max=100"`
	ReferralCode  *string `json:"referralCode,omitempty" binding:"omitempty,max=64"`
}

// ToDraft returns nil for a selection-only request. Guests default to one.
func (r *BookingRequest) ToDraft() *shared.BookingDraft {
	if r.StartDate == nil && r.EndDate == nil {
		return nil
	}
	return &shared.BookingDraft{
		StartDate:    ptr.Coalesce(r.StartDate, ""),
		EndDate:      ptr.Coalesce(r.EndDate, ""),
		Guests:       ptr.Coalesce(r.Guests, 1),
		ReferralCode: r.GetReferralCode(),
	}
}

func (r *BookingRequest) GetReferralCode() *string {
	if r.ReferralCode == nil {
		return nil
	}
	return ptr.StringOrNil(strings.TrimSpace(*r.ReferralCode))
}
