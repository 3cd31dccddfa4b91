package request

import (
	"genesis-storefront/internal/domain/identity"
)

type LoginRequest struct {
	Name         string   `json:"name" binding:"required,max=120"`
	Email        string   `json:"email" binding:"required,email"`
	ReferralCode *string  `json:"referralCode,omitempty" binding:"omitempty,max=64"`
	Preferences  []string `json:"preferences,omitempty" binding:"omitempty,max=20,dive,max=64"`
}

func (r *LoginRequest) ToDomain() (*identity.Identity, error) {
	return identity.New(r.Name, r.Email, r.ReferralCode, r.Preferences)
}

type StaffLoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}
