package identity

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidEmail = errors.New("invalid email format")

// emailRule is the same rule the stored identity document is checked
// against, so an Email accepted here always persists.
const emailRule = "required,email"

var validate = validator.New()

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, emailRule); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}
