//go:build unit || e2e

package builder

import (
	"genesis-storefront/internal/domain/identity"
	reqdto "genesis-storefront/internal/handler/dto/request"
)

type IdentityBuilder struct {
	Name         string
	Email        string
	ReferralCode *string
	Preferences  []string
}

func NewIdentityBuilder() *IdentityBuilder {
	return &IdentityBuilder{
		Name:        "Amani Wanjiru",
		Email:       "amani@example.com",
		Preferences: []string{"Safari"},
	}
}

func (i *IdentityBuilder) With(mutate func(*IdentityBuilder)) *IdentityBuilder {
	mutate(i)
	return i
}

func (i *IdentityBuilder) WithEmail(email string) *IdentityBuilder {
	i.Email = email
	return i
}

func (i *IdentityBuilder) WithName(name string) *IdentityBuilder {
	i.Name = name
	return i
}

func (i *IdentityBuilder) WithReferralCode(code string) *IdentityBuilder {
	i.ReferralCode = &code
	return i
}

// Build methods
func (i *IdentityBuilder) BuildDomain() (*identity.Identity, error) {
	return identity.New(i.Name, i.Email, i.ReferralCode, i.Preferences)
}

// MustBuild is for fixtures whose defaults are known to be valid.
func (i *IdentityBuilder) MustBuild() identity.Identity {
	who, err := i.BuildDomain()
	if err != nil {
		panic(err)
	}
	return *who
}

func (i *IdentityBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Name:         i.Name,
		Email:        i.Email,
		ReferralCode: i.ReferralCode,
		Preferences:  i.Preferences,
	}
}
