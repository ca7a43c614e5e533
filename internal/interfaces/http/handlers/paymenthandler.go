package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	payusecases "mentorhub/internal/application/payment/usecases"
	"mentorhub/internal/interfaces/http/middleware"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/utils"
)

type PaymentHandler struct {
	openUC   *payusecases.OpenPaymentSessionUseCase
	signalUC *payusecases.HandlePaymentSignalUseCase
	closeUC  *payusecases.ClosePaymentSessionUseCase
	logger   logger.Interface
}

func NewPaymentHandler(
	openUC *payusecases.OpenPaymentSessionUseCase,
	signalUC *payusecases.HandlePaymentSignalUseCase,
	closeUC *payusecases.ClosePaymentSessionUseCase,
	log logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		openUC:   openUC,
		signalUC: signalUC,
		closeUC:  closeUC,
		logger:   log,
	}
}

type openSessionRequest struct {
	DomainSlug string `json:"domain_slug" binding:"required,max=100"`
}

// signalRequest is one relayed surface message. Origin is the browsing
// context origin the client observed; Payload is the raw message body,
// forwarded untouched so malformed provider messages reach the classifier
// as-is.
type signalRequest struct {
	Origin  string          `json:"origin" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

// OpenSession is the subscribe button. It ensures a pending ledger record
// and opens a payment session bound to it.
func (h *PaymentHandler) OpenSession(c *gin.Context) {
	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	result, err := h.openUC.Execute(c.Request.Context(), payusecases.OpenPaymentSessionCommand{
		UserID:     middleware.CurrentUserID(c),
		UserEmail:  middleware.CurrentUserEmail(c),
		DomainSlug: req.DomainSlug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"session_sid":    result.SessionSID,
		"surface_url":    result.SurfaceURL,
		"record_sid":     result.RecordSID,
		"reused_record":  result.ReusedRecord,
		"reused_session": result.ReusedSession,
	})
}

// Signal relays one surface message into the session. The response reports
// the disposition so the client knows whether to reveal the surface, follow
// a navigation, or show the paid-but-pending notice.
func (h *PaymentHandler) Signal(c *gin.Context) {
	var req signalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	result, err := h.signalUC.Execute(c.Request.Context(), payusecases.HandlePaymentSignalCommand{
		SessionSID: c.Param("sid"),
		UserID:     middleware.CurrentUserID(c),
		Origin:     req.Origin,
		Payload:    req.Payload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	disp := result.Disposition
	body := gin.H{
		"disposition": string(disp.Kind),
		"state":       string(disp.State),
	}
	if disp.ReceiptURL != "" {
		body["receipt_url"] = disp.ReceiptURL
	}
	if disp.NavigateURL != "" {
		body["navigate_url"] = disp.NavigateURL
	}
	if disp.FailReason != "" {
		body["fail_reason"] = disp.FailReason
	}
	if disp.ActivationErr != nil {
		// Payment went through but the ledger write did not; the record is
		// flagged for the retry sweep and support is notified. The client
		// shows a "payment received, activation pending" notice.
		body["activation_pending"] = true
		body["activation_error"] = disp.ActivationErr.Error()
	}

	utils.OKResponse(c, body)
}

// CloseSession dismisses the session. Closing before any terminal signal is
// a cancellation and leaves the pending record available for a retry.
func (h *PaymentHandler) CloseSession(c *gin.Context) {
	result, err := h.closeUC.Execute(c.Request.Context(), payusecases.ClosePaymentSessionCommand{
		SessionSID: c.Param("sid"),
		UserID:     middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	body := gin.H{
		"success":   result.Outcome.Success,
		"cancelled": result.Outcome.Cancelled,
	}
	if result.Outcome.ReceiptURL != "" {
		body["receipt_url"] = result.Outcome.ReceiptURL
	}
	utils.OKResponse(c, body)
}
