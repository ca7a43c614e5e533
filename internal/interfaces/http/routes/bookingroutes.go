package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub/internal/interfaces/http/handlers"
	"mentorhub/internal/interfaces/http/middleware"
)

// BookingRouteConfig contains dependencies for mentorship booking routes.
type BookingRouteConfig struct {
	BookingHandler *handlers.BookingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBookingRoutes configures booking creation, listing and lifecycle
// actions. :action is one of confirm, cancel, complete.
func SetupBookingRoutes(engine *gin.Engine, cfg *BookingRouteConfig) {
	bookings := engine.Group("/bookings")
	bookings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		bookings.POST("", cfg.BookingHandler.Create)
		bookings.GET("", cfg.BookingHandler.List)
		bookings.POST("/:sid/:action", cfg.BookingHandler.Respond)
	}
}
