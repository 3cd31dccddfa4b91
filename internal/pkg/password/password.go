package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("passcode hashing failed")
	ErrComparisonFailed = errors.New("passcode comparison failed")
	ErrInvalidPassword  = errors.New("invalid passcode")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// Verifier checks candidate passcodes against one configured bcrypt hash.
type Verifier struct {
	hash string
}

func NewVerifier(hash string) *Verifier {
	return &Verifier{hash: hash}
}

func (v *Verifier) Verify(passcode string) bool {
	return ComparePassword(v.hash, passcode) == nil
}
