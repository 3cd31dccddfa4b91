package components

import (
	"context"
	"log/slog"

	"genesis-storefront/internal/infra/repository"
	"genesis-storefront/internal/infra/seed"
	"genesis-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		seed.Load,
		fx.Annotate(
			NewStateRepository,
			fx.As(new(shared.DestinationReader)),
			fx.As(new(shared.BookingReader)),
			fx.As(new(shared.StorefrontReader)),
			fx.As(new(shared.BookingWriter)),
			fx.As(new(shared.CatalogWriter)),
			fx.As(new(shared.FavoriteWriter)),
			fx.As(new(shared.IdentityStore)),
		),
	),
)

// NewStateRepository loads the storefront state once at startup. A backend
// failure here aborts the application start.
func NewStateRepository(store repository.DocumentStore, defaults seed.Defaults, logger *slog.Logger) (*repository.StateRepository, error) {
	return repository.NewStateRepository(context.Background(), store, defaults, logger)
}
