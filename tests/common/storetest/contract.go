//go:build unit || e2e

package storetest

import (
	"context"
	"testing"

	"genesis-storefront/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBackendContract exercises the behaviour every kv.Backend must share.
func RunBackendContract(t *testing.T, b kv.Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		_, err := b.Get(ctx, "never-written")
		require.Error(t, err)
		assert.True(t, kv.IsNotFound(err))
	})

	t.Run("put then get returns the exact bytes", func(t *testing.T) {
		payload := []byte(`[{"id":"1","name":"Maasai Mara Safari"}]`)
		require.NoError(t, b.Put(ctx, "destinations", payload))

		got, err := b.Get(ctx, "destinations")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, b.Put(ctx, "favorites", []byte(`["1"]`)))
		require.NoError(t, b.Put(ctx, "favorites", []byte(`["1","4"]`)))

		got, err := b.Get(ctx, "favorites")
		require.NoError(t, err)
		assert.Equal(t, `["1","4"]`, string(got))
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		require.NoError(t, b.Put(ctx, "active-user", []byte(`{"name":"Amani"}`)))
		require.NoError(t, b.Delete(ctx, "active-user"))

		_, err := b.Get(ctx, "active-user")
		assert.True(t, kv.IsNotFound(err))

		assert.NoError(t, b.Delete(ctx, "active-user"))
	})

	t.Run("unsafe keys are rejected", func(t *testing.T) {
		for _, key := range []string{"", "../escape", "a/b", "with space"} {
			assert.Error(t, b.Put(ctx, key, []byte(`{}`)), key)
		}
	})
}
