package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub/internal/domain/user"
	"mentorhub/internal/interfaces/http/handlers"
	"mentorhub/internal/interfaces/http/middleware"
)

// ResourceRouteConfig contains dependencies for domain content routes.
type ResourceRouteConfig struct {
	ResourceHandler *handlers.ResourceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupResourceRoutes configures gated content reads and mentor/admin
// authoring routes.
func SetupResourceRoutes(engine *gin.Engine, cfg *ResourceRouteConfig) {
	engine.GET("/domains/:slug/posts",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.ResourceHandler.ListDomainContent,
	)

	posts := engine.Group("/posts")
	posts.Use(cfg.AuthMiddleware.RequireAuth(), middleware.RequireRole(user.RoleMentor, user.RoleAdmin))
	{
		posts.POST("", cfg.ResourceHandler.CreatePost)
		posts.POST("/:sid/banner", cfg.ResourceHandler.UploadBanner)
	}
}
