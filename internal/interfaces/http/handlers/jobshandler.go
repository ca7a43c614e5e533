package handlers

import (
	"github.com/gin-gonic/gin"

	payusecases "mentorhub/internal/application/payment/usecases"
	resusecases "mentorhub/internal/application/resource/usecases"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/utils"
)

// JobsHandler exposes the maintenance sweeps to an external scheduler. The
// same sweeps also run in the worker process; the endpoints exist for
// deployments that prefer cron-driven triggering.
type JobsHandler struct {
	publishUC *resusecases.PublishScheduledUseCase
	retryUC   *payusecases.RetryActivationUseCase
	logger    logger.Interface
}

func NewJobsHandler(
	publishUC *resusecases.PublishScheduledUseCase,
	retryUC *payusecases.RetryActivationUseCase,
	log logger.Interface,
) *JobsHandler {
	return &JobsHandler{
		publishUC: publishUC,
		retryUC:   retryUC,
		logger:    log,
	}
}

func (h *JobsHandler) PublishScheduled(c *gin.Context) {
	result, err := h.publishUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"due":       result.Due,
		"published": result.Published,
		"failed":    result.Failed,
	})
}

func (h *JobsHandler) RetryActivation(c *gin.Context) {
	result, err := h.retryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"scanned":   result.Scanned,
		"activated": result.Activated,
		"failed":    result.Failed,
	})
}
