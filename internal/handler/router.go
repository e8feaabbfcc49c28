package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"quoteshare/internal/handler/api"
	"quoteshare/internal/handler/middleware"
	"quoteshare/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Quote    *api.QuoteHandler
	Share    *api.ShareHandler
	Settings *api.SettingsHandler
	Sync     *api.SyncHandler
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

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: handlers.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Quote.List},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Quote.Get},
				{Method: http.MethodPost, Path: "/:id/share", Handler: handlers.Quote.RegenerateShareToken},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: handlers.Quote.UpdateStatus},
			})
		}

		// Share links are public: the token is the capability.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/share/:shareId", Handler: handlers.Share.View},
		})

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(settings, []route{
				{Method: http.MethodPut, Path: "/notion", Handler: handlers.Settings.Update},
				{Method: http.MethodGet, Path: "/notion", Handler: handlers.Settings.Get},
				{Method: http.MethodPost, Path: "/notion/test", Handler: handlers.Settings.TestConnection},
			})
		}

		sync := apiGroup.Group("/sync")
		sync.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sync, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Sync.Run},
				{Method: http.MethodGet, Path: "/status", Handler: handlers.Sync.Status},
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
