//go:build unit || e2e

package statetest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"genesis-storefront/internal/infra/document"
	"genesis-storefront/internal/infra/kv"
	"genesis-storefront/internal/infra/repository"
	"genesis-storefront/internal/infra/seed"

	"github.com/stretchr/testify/require"
)

// Fixture is a seeded repository on top of an in-memory backend.
type Fixture struct {
	Logger  *slog.Logger
	Backend *kv.Memory
	Store   *document.Store
	Repo    *repository.StateRepository
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	logger := DiscardLogger()
	backend := kv.NewMemory("test", logger)
	store := document.NewStore(backend, logger)
	repo, err := repository.NewStateRepository(context.Background(), store, seed.MustLoad(), logger)
	require.NoError(t, err)

	return &Fixture{
		Logger:  logger,
		Backend: backend,
		Store:   store,
		Repo:    repo,
	}
}

// Reload builds a fresh repository from whatever the backend holds, as a
// restarted process would.
func (f *Fixture) Reload(t *testing.T) *repository.StateRepository {
	t.Helper()

	repo, err := repository.NewStateRepository(context.Background(), f.Store, seed.MustLoad(), f.Logger)
	require.NoError(t, err)
	return repo
}
