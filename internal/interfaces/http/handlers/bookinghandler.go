package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	bookusecases "mentorhub/internal/application/booking/usecases"
	"mentorhub/internal/domain/booking"
	"mentorhub/internal/interfaces/http/middleware"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/utils"
)

type BookingHandler struct {
	createUC  *bookusecases.CreateBookingUseCase
	respondUC *bookusecases.RespondBookingUseCase
	listUC    *bookusecases.ListBookingsUseCase
	logger    logger.Interface
}

func NewBookingHandler(
	createUC *bookusecases.CreateBookingUseCase,
	respondUC *bookusecases.RespondBookingUseCase,
	listUC *bookusecases.ListBookingsUseCase,
	log logger.Interface,
) *BookingHandler {
	return &BookingHandler{
		createUC:  createUC,
		respondUC: respondUC,
		listUC:    listUC,
		logger:    log,
	}
}

type createBookingRequest struct {
	MentorSID string    `json:"mentor_sid" binding:"required"`
	Topic     string    `json:"topic" binding:"required,max=300"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	EndsAt    time.Time `json:"ends_at" binding:"required"`
}

type respondBookingRequest struct {
	Note string `json:"note" binding:"max=1000"`
}

type bookingResponse struct {
	SID       string    `json:"sid"`
	Topic     string    `json:"topic"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toBookingResponse(b *booking.Booking) bookingResponse {
	return bookingResponse{
		SID:       b.SID(),
		Topic:     b.Topic(),
		StartsAt:  b.StartsAt(),
		EndsAt:    b.EndsAt(),
		Status:    string(b.Status()),
		Note:      b.Note(),
		CreatedAt: b.CreatedAt(),
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), bookusecases.CreateBookingCommand{
		MenteeID:  middleware.CurrentUserID(c),
		MentorSID: req.MentorSID,
		Topic:     req.Topic,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBookingResponse(b), "booking requested")
}

// Respond applies a lifecycle action named in the path: confirm, cancel or
// complete.
func (h *BookingHandler) Respond(c *gin.Context) {
	var req respondBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
			return
		}
	}

	b, err := h.respondUC.Execute(c.Request.Context(), bookusecases.RespondBookingCommand{
		BookingSID: c.Param("sid"),
		ActorID:    middleware.CurrentUserID(c),
		Action:     bookusecases.BookingAction(c.Param("action")),
		Note:       req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toBookingResponse(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context(), bookusecases.ListBookingsCommand{
		ActorID:  middleware.CurrentUserID(c),
		AsMentor: c.Query("as") == "mentor",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, toBookingResponse(b))
	}
	utils.OKResponse(c, items)
}
