package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loyaltybot/internal/handler/api"
	"loyaltybot/internal/handler/middleware"
	"loyaltybot/internal/handler/telegram"
	"loyaltybot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, webhookHandler *telegram.WebhookHandler, partnerHandler *api.PartnerHandler, authMiddleware *middleware.PartnerAuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, webhookHandler, partnerHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, webhookHandler *telegram.WebhookHandler, partnerHandler *api.PartnerHandler, authMiddleware *middleware.PartnerAuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST("/telegram/webhook/:token", webhookHandler.Handle)

	apiGroup := engine.Group("/api")
	{
		partner := apiGroup.Group("/partner")
		{
			addRoutes(partner, []route{
				{Method: http.MethodPost, Path: "/token", Handler: partnerHandler.IssueToken},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/verify", Handler: partnerHandler.VerifyBooking},
			})
		}

		profiles := apiGroup.Group("/profiles")
		profiles.Use(authMiddleware.RequireAuth())
		{
			addRoutes(profiles, []route{
				{Method: http.MethodGet, Path: "/:telegram_id", Handler: partnerHandler.GetProfile},
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
