package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"laundromat-api/internal/handler/api"
	"laundromat-api/internal/handler/middleware"
	"laundromat-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Contract     *api.ContractHandler
	Availability *api.AvailabilityHandler
	Balance      *api.BalanceHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		contracts := apiGroup.Group("/contracts")
		{
			addRoutes(contracts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Contract.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Contract.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Contract.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Contract.Cancel},
			})
		}

		machines := apiGroup.Group("/washing-machines")
		{
			addRoutes(machines, []route{
				{Method: http.MethodPost, Path: "/:id/bulk-cancel", Handler: h.Contract.BulkCancelMachine},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Availability.MachineCalendar},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Availability.MachineSlots},
			})
		}

		laundromats := apiGroup.Group("/laundromats")
		{
			addRoutes(laundromats, []route{
				{Method: http.MethodPost, Path: "/:id/bulk-cancel", Handler: h.Contract.BulkCancelLaundromat},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Availability.LaundromatCalendar},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Availability.LaundromatSlots},
			})
		}

		balance := apiGroup.Group("/balance")
		{
			addRoutes(balance, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Balance.Get},
				{Method: http.MethodGet, Path: "/transactions", Handler: h.Balance.Transactions},
				{Method: http.MethodPost, Path: "/topup", Handler: h.Balance.TopUp},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/notifications/ws", Handler: h.Notification.Connect},
		})
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
