//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("safari-2024")
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "safari-2024"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrComparisonFailed)
	assert.ErrorIs(t, ComparePassword(hash, ""), ErrInvalidPassword)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestVerifier(t *testing.T) {
	hash, err := HashPassword("karen-house")
	require.NoError(t, err)

	v := NewVerifier(hash)
	assert.True(t, v.Verify("karen-house"))
	assert.False(t, v.Verify("karen"))
	assert.False(t, NewVerifier("").Verify("karen-house"))
}
