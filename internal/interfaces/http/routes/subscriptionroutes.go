package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub/internal/interfaces/http/handlers"
	"mentorhub/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig contains dependencies for ledger routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures the caller-scoped ledger routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subs := engine.Group("/subscriptions")
	subs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subs.POST("", cfg.SubscriptionHandler.Request)
		subs.GET("", cfg.SubscriptionHandler.List)
	}
}
