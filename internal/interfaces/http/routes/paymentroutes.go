package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub/internal/interfaces/http/handlers"
	"mentorhub/internal/interfaces/http/middleware"
)

// PaymentRouteConfig contains dependencies for payment session routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPaymentRoutes configures the payment session lifecycle.
// Routes: /payments/sessions/*
// :sid is a payment session SID (pay_xxx format)
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	sessions := engine.Group("/payments/sessions")
	sessions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		sessions.POST("", cfg.PaymentHandler.OpenSession)
		sessions.POST("/:sid/signals", cfg.PaymentHandler.Signal)
		sessions.DELETE("/:sid", cfg.PaymentHandler.CloseSession)
	}
}
