package identity

import (
	"errors"
	"strings"
)

var ErrInvalidName = errors.New("invalid name")

// Identity is the active customer. Email is the stable key; there is no
// separate id.
type Identity struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	ReferralCode *string  `json:"referralCode,omitempty"`
	Preferences  []string `json:"preferences,omitempty"`
}

func New(name, email string, referralCode *string, preferences []string) (*Identity, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, ErrInvalidName
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	var code *string
	if referralCode != nil {
		if c := strings.TrimSpace(*referralCode); c != "" {
			code = &c
		}
	}

	return &Identity{
		Name:         n,
		Email:        e.String(),
		ReferralCode: code,
		Preferences:  preferences,
	}, nil
}

// Owns reports whether a booking recorded under email belongs to this
// identity. Emails must match exactly, case included.
func (i Identity) Owns(email string) bool {
	return i.Email == email
}
