//go:build unit

package commands_test

import (
	"context"
	"testing"

	"genesis-storefront/internal/infra/document"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/commands"
	"genesis-storefront/tests/common/statetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("toggling twice restores the original set", func(t *testing.T) {
		f := statetest.NewFixture(t)
		uc := commands.NewFavoriteUseCase(f.Repo, f.Logger)

		on, err := uc.ToggleFavorite(ctx, "2")
		require.NoError(t, err)
		assert.True(t, on)
		assert.True(t, f.Repo.Favorites().Has("2"))

		on, err = uc.ToggleFavorite(ctx, "2")
		require.NoError(t, err)
		assert.False(t, on)

		var stored []string
		found, err := f.Store.Load(ctx, document.KeyFavorites, &stored)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, stored)
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		f := statetest.NewFixture(t)
		uc := commands.NewFavoriteUseCase(f.Repo, f.Logger)

		_, err := uc.ToggleFavorite(ctx, "")
		assert.True(t, errs.Is(err, errs.ErrInvalidBookingInput))
	})
}
