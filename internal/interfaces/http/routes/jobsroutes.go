package routes

import (
	"github.com/gin-gonic/gin"

	"mentorhub/internal/interfaces/http/handlers"
	"mentorhub/internal/interfaces/http/middleware"
)

// JobsRouteConfig contains dependencies for scheduler-triggered maintenance
// routes.
type JobsRouteConfig struct {
	JobsHandler *handlers.JobsHandler
	// Token is the shared secret external schedulers present. Empty
	// disables the endpoints.
	Token string
}

// SetupJobsRoutes configures the maintenance sweep triggers.
func SetupJobsRoutes(engine *gin.Engine, cfg *JobsRouteConfig) {
	jobs := engine.Group("/jobs")
	jobs.Use(middleware.RequireJobsToken(cfg.Token))
	{
		jobs.POST("/publish-scheduled", cfg.JobsHandler.PublishScheduled)
		jobs.POST("/retry-activation", cfg.JobsHandler.RetryActivation)
	}
}
