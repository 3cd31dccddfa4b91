package components

import (
	"genesis-storefront/internal/handler"
	"genesis-storefront/internal/handler/api"
	"genesis-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewSessionHandler,
		api.NewBookingHandler,
		api.NewBackOfficeHandler,
		middleware.NewAccessMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	catalog *api.CatalogHandler,
	session *api.SessionHandler,
	booking *api.BookingHandler,
	backOffice *api.BackOfficeHandler,
) handler.Handlers {
	return handler.Handlers{
		Catalog:    catalog,
		Session:    session,
		Booking:    booking,
		BackOffice: backOffice,
	}
}
