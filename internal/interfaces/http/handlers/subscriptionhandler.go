package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	subusecases "mentorhub/internal/application/subscription/usecases"
	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/interfaces/http/middleware"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/utils"
)

type SubscriptionHandler struct {
	requestUC *subusecases.RequestSubscriptionUseCase
	listUC    *subusecases.ListUserSubscriptionsUseCase
	logger    logger.Interface
}

func NewSubscriptionHandler(
	requestUC *subusecases.RequestSubscriptionUseCase,
	listUC *subusecases.ListUserSubscriptionsUseCase,
	log logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		requestUC: requestUC,
		listUC:    listUC,
		logger:    log,
	}
}

type requestSubscriptionRequest struct {
	DomainSlug string `json:"domain_slug" binding:"required,max=100"`
}

type subscriptionResponse struct {
	SID        string     `json:"sid"`
	DomainSlug string     `json:"domain_slug"`
	Status     string     `json:"status"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toSubscriptionResponse(r *subscription.Record) subscriptionResponse {
	return subscriptionResponse{
		SID:        r.SID(),
		DomainSlug: r.DomainSlug(),
		Status:     string(r.Status()),
		ExpiresAt:  r.ExpiresAt(),
		CreatedAt:  r.CreatedAt(),
	}
}

// Request creates (or reuses) a pending ledger record without opening a
// payment session. The payment endpoints are the usual entry point; this one
// exists for clients that stage the two steps separately.
func (h *SubscriptionHandler) Request(c *gin.Context) {
	var req requestSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	result, err := h.requestUC.Execute(c.Request.Context(), subusecases.RequestSubscriptionCommand{
		UserID:     middleware.CurrentUserID(c),
		UserEmail:  middleware.CurrentUserEmail(c),
		DomainSlug: req.DomainSlug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"record": toSubscriptionResponse(result.Record),
		"reused": result.Reused,
	})
}

// List returns the caller's ledger records. ?active=true narrows to records
// unexpired at this instant.
func (h *SubscriptionHandler) List(c *gin.Context) {
	records, err := h.listUC.Execute(c.Request.Context(), subusecases.ListUserSubscriptionsCommand{
		UserEmail:  middleware.CurrentUserEmail(c),
		ActiveOnly: c.Query("active") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]subscriptionResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toSubscriptionResponse(r))
	}
	utils.OKResponse(c, items)
}
