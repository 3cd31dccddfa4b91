package components

import (
	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/pkg/clock"
	"genesis-storefront/internal/pkg/config"
	"genesis-storefront/internal/pkg/password"
	"genesis-storefront/internal/usecase/access"
	"genesis-storefront/internal/usecase/commands"
	"genesis-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAccessModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewBackOfficeUseCase,
		commands.NewFavoriteUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
	),
)

var usecaseAccessModule = fx.Module("usecase/access",
	fx.Provide(
		NewPasscodeVerifier,
		fx.Annotate(
			access.NewGate,
			fx.As(new(access.Gatekeeper)),
		),
	),
)

func NewPasscodeVerifier(cfg config.Config) access.PasscodeVerifier {
	return password.NewVerifier(cfg.Staff.PasscodeHash)
}
