package response

import (
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/usecase/access"
)

type IdentityResponse struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	ReferralCode *string  `json:"referralCode,omitempty"`
	Preferences  []string `json:"preferences,omitempty"`
}

type SessionResponse struct {
	Identity              *IdentityResponse `json:"identity"`
	StaffSession          bool              `json:"staffSession"`
	View                  string            `json:"view"`
	PendingDestinationID  string            `json:"pendingDestinationId,omitempty"`
	SelectedDestinationID string            `json:"selectedDestinationId,omitempty"`
	CartCount             int               `json:"cartCount"`
}

// PromptResponse is returned when an action needs a login first, and by
// gated actions that completed.
type PromptResponse struct {
	Prompt                string           `json:"prompt"`
	SelectedDestinationID string           `json:"selectedDestinationId,omitempty"`
	Booking               *BookingResponse `json:"booking,omitempty"`
}

func FromIdentity(who *identity.Identity) *IdentityResponse {
	if who == nil {
		return nil
	}
	return &IdentityResponse{
		Name:         who.Name,
		Email:        who.Email,
		ReferralCode: who.ReferralCode,
		Preferences:  who.Preferences,
	}
}

func FromSnapshot(s access.Snapshot) *SessionResponse {
	return &SessionResponse{
		Identity:              FromIdentity(s.Identity),
		StaffSession:          s.StaffSession,
		View:                  string(s.View),
		PendingDestinationID:  s.PendingDestinationID,
		SelectedDestinationID: s.SelectedDestinationID,
		CartCount:             s.CartCount,
	}
}

func FromOutcome(o access.Outcome) *PromptResponse {
	res := &PromptResponse{
		Prompt:                string(o.Prompt),
		SelectedDestinationID: o.SelectedDestinationID,
	}
	if o.Booking != nil {
		res.Booking = FromBooking(o.Booking)
	}
	return res
}

func FromPrompt(p access.Prompt) *PromptResponse {
	return &PromptResponse{Prompt: string(p)}
}
