package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cafe-kiosk/internal/handler/api"
	"cafe-kiosk/internal/handler/middleware"
	"cafe-kiosk/internal/pkg/config"
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
	logger *slog.Logger,
	menuHandler *api.MenuHandler,
	orderHandler *api.OrderHandler,
	sessionHandler *api.SessionHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, menuHandler, orderHandler, sessionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.NewRequestLogger(logger).Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, menuHandler *api.MenuHandler, orderHandler *api.OrderHandler, sessionHandler *api.SessionHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/menu", Handler: menuHandler.List},
			{Method: http.MethodPost, Path: "/sessions", Handler: sessionHandler.Start},
		})

		order := apiGroup.Group("/order")
		addRoutes(order, []route{
			{Method: http.MethodGet, Path: "", Handler: orderHandler.Get},
			{Method: http.MethodPost, Path: "/items", Handler: orderHandler.AddItem},
			{Method: http.MethodPost, Path: "/checkout", Handler: orderHandler.Checkout, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodGet, Path: "/receipt", Handler: orderHandler.Receipt, Mw: []gin.HandlerFunc{middleware.NoStore()}},
		})
	}
}

// @Summary Health check
// @Description Check if the kiosk is serving
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Kiosk is healthy",
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
