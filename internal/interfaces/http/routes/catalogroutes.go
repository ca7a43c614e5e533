package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub/internal/domain/user"
	"mentorhub/internal/interfaces/http/handlers"
	"mentorhub/internal/interfaces/http/middleware"
)

// CatalogRouteConfig contains dependencies for content-domain catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures the catalog listing and admin management.
// The listing is public; a token, when present, decorates each entry with
// the caller's lock state.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	engine.GET("/domains", cfg.AuthMiddleware.OptionalAuth(), cfg.CatalogHandler.ListDomains)

	admin := engine.Group("/admin/domains")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), middleware.RequireRole(user.RoleAdmin))
	{
		admin.POST("", cfg.CatalogHandler.CreateDomain)
	}
}
