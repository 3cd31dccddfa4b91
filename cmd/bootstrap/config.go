package bootstrap

import (
	"log/slog"

	"genesis-storefront/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig reads an optional .env file before the environment. Variables
// already set in the environment win.
func NewConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err)
	}
	return config.LoadConfig()
}
