package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"genesis-storefront/internal/handler/api"
	"genesis-storefront/internal/handler/middleware"
	"genesis-storefront/internal/pkg/config"
	"genesis-storefront/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Catalog    *api.CatalogHandler
	Session    *api.SessionHandler
	Booking    *api.BookingHandler
	BackOffice *api.BackOfficeHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	accessMiddleware *middleware.AccessMiddleware,
	m *metrics.Metrics,
	logger *slog.Logger,
) {
	setupMiddleware(engine, cfg, m, logger)
	setupRoutes(engine, h, accessMiddleware)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, accessMiddleware *middleware.AccessMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/destinations", Handler: h.Catalog.ListDestinations},
			{Method: http.MethodGet, Path: "/destinations/:id", Handler: h.Catalog.GetDestination},
			{Method: http.MethodGet, Path: "/social-links", Handler: h.Catalog.SocialLinks},
			{Method: http.MethodGet, Path: "/contact", Handler: h.Catalog.Contact},
			{Method: http.MethodGet, Path: "/favorites", Handler: h.Catalog.Favorites},
			{Method: http.MethodPost, Path: "/favorites/:id/toggle", Handler: h.Catalog.ToggleFavorite},
		})

		session := apiGroup.Group("/session")
		{
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Session.Session},
				{Method: http.MethodPost, Path: "/login", Handler: h.Session.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Session.Logout},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			// Anonymous requests are captured by the gate, not rejected.
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine, Mw: []gin.HandlerFunc{accessMiddleware.RequireCustomer()}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.CancelMine, Mw: []gin.HandlerFunc{accessMiddleware.RequireCustomer()}},
			})
		}

		backOffice := apiGroup.Group("/backoffice")
		{
			addRoutes(backOffice, []route{
				{Method: http.MethodPost, Path: "/enter", Handler: h.BackOffice.Enter},
				{Method: http.MethodPost, Path: "/login", Handler: h.BackOffice.Login},
				{Method: http.MethodPost, Path: "/leave", Handler: h.BackOffice.Leave},
				{Method: http.MethodPost, Path: "/logout", Handler: h.BackOffice.Logout},
			})

			staff := backOffice.Group("")
			staff.Use(accessMiddleware.RequireStaff())
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.BackOffice.Ledger},
				{Method: http.MethodGet, Path: "/summary", Handler: h.BackOffice.Summary},
				{Method: http.MethodPut, Path: "/destinations", Handler: h.BackOffice.ReplaceDestinations},
				{Method: http.MethodPut, Path: "/bookings", Handler: h.BackOffice.ReplaceBookings},
				{Method: http.MethodPut, Path: "/social-links", Handler: h.BackOffice.ReplaceSocialLinks},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: h.BackOffice.Confirm},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.BackOffice.Cancel},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.BackOffice.Purge},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
