package bootstrap

import (
	"context"
	"log/slog"

	"genesis-storefront/internal/infra/document"
	"genesis-storefront/internal/infra/kv"
	"genesis-storefront/internal/infra/repository"
	"genesis-storefront/internal/pkg/config"
	"genesis-storefront/internal/pkg/metrics"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewBackend,
		fx.Annotate(
			document.NewStore,
			fx.As(new(repository.DocumentStore)),
		),
	),
)

// NewBackend opens the configured backend, counted by the store metrics.
func NewBackend(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) (kv.Backend, error) {
	backend, cleanup, err := kv.Open(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("document store opened", "driver", string(backend.Driver()), "namespace", cfg.Store.Namespace)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return kv.Instrument(backend, m.StoreOps), nil
}
