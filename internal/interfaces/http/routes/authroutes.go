// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub/internal/interfaces/http/handlers"
	"mentorhub/internal/interfaces/http/middleware"
)

// AuthRouteConfig contains dependencies for account and profile routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimit guards the credential endpoints against brute force.
	RateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures registration, login, profile and mentor
// discovery routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if cfg.RateLimit != nil {
		auth.Use(cfg.RateLimit)
	}
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}

	me := engine.Group("/users/me")
	me.Use(cfg.AuthMiddleware.RequireAuth())
	{
		me.GET("", cfg.ProfileHandler.Me)
		me.PUT("", cfg.ProfileHandler.UpdateMe)
		me.POST("/photo", cfg.ProfileHandler.UploadPhoto)
		me.POST("/resume", cfg.ProfileHandler.UploadResume)
	}

	// Mentor discovery is public.
	engine.GET("/mentors", cfg.ProfileHandler.ListMentors)
}
