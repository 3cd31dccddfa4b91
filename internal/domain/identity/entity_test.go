//go:build unit

package identity_test

import (
	"testing"

	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.IdentityBuilder)
	errIs  error
}

func TestIdentity(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewIdentityBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Amani Wanjiru", actual.Name)
		assert.Equal(t, "amani@example.com", actual.Email)
		assert.Nil(t, actual.ReferralCode)
		assert.Equal(t, []string{"Safari"}, actual.Preferences)
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.IdentityBuilder) { b.WithEmail("  amani@example.com ") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.IdentityBuilder) { b.WithEmail("") },
				errIs:  identity.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.IdentityBuilder) { b.WithEmail("amani.example.com") },
				errIs:  identity.ErrInvalidEmail,
			},
			{
				name:   "consecutive dots in the local part",
				mutate: func(b *builder.IdentityBuilder) { b.WithEmail("a..b@example.com") },
				errIs:  identity.ErrInvalidEmail,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.IdentityBuilder) { b.WithName("   ") },
				errIs:  identity.ErrInvalidName,
			},
		})
	})

	t.Run("blank referral code is dropped", func(t *testing.T) {
		actual, err := builder.NewIdentityBuilder().WithReferralCode("  ").BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.ReferralCode)
	})

	t.Run("owns requires an exact email match", func(t *testing.T) {
		actual, err := builder.NewIdentityBuilder().BuildDomain()
		require.NoError(t, err)
		assert.True(t, actual.Owns("amani@example.com"))
		assert.False(t, actual.Owns("Amani@Example.com"))
		assert.False(t, actual.Owns("someone@example.com"))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewIdentityBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
