package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockcore/internal/handler/api"
	"stockcore/internal/handler/middleware"
	"stockcore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	ledgerHandler *api.LedgerHandler,
	availabilityHandler *api.AvailabilityHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, ledgerHandler, availabilityHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	ledgerHandler *api.LedgerHandler,
	availabilityHandler *api.AvailabilityHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Reserve},
				{Method: http.MethodDelete, Path: "/:session_id", Handler: reservationHandler.Release},
				{Method: http.MethodPost, Path: "/:session_id/confirm", Handler: reservationHandler.Confirm},
				{Method: http.MethodPost, Path: "/:session_id/extend", Handler: reservationHandler.Extend},
			})
		}

		resources := apiGroup.Group("/resources")
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.GetAvailability},
			})
		}

		ledger := apiGroup.Group("/ledger")
		{
			addRoutes(ledger, []route{
				{Method: http.MethodPost, Path: "/usages", Handler: ledgerHandler.RecordUsage},
				{Method: http.MethodPost, Path: "/returns", Handler: ledgerHandler.RecordReturn},
				{Method: http.MethodPost, Path: "/adjustments", Handler: ledgerHandler.RecordAdjustment},
				{Method: http.MethodPost, Path: "/sufficiency-checks", Handler: ledgerHandler.CheckSufficiency},
				{Method: http.MethodGet, Path: "/entries", Handler: ledgerHandler.ListEntries},
				{Method: http.MethodGet, Path: "/resources/:id/summary", Handler: ledgerHandler.ResourceSummary},
			})
		}
	}
}

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
