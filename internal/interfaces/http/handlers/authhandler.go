package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	userusecases "mentorhub/internal/application/user/usecases"
	"mentorhub/internal/domain/user"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/services/storage"
	"mentorhub/internal/shared/utils"
)

type AuthHandler struct {
	registerUC *userusecases.RegisterUseCase
	loginUC    *userusecases.LoginUseCase
	storage    storage.Service
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC *userusecases.RegisterUseCase,
	loginUC *userusecases.LoginUseCase,
	store storage.Service,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		storage:    store,
		logger:     log,
	}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	SID         string    `json:"sid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Bio         string    `json:"bio,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	ResumeURL   string    `json:"resume_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *AuthHandler) toUserResponse(u *user.User) userResponse {
	return userResponse{
		SID:         u.SID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        string(u.Role()),
		Bio:         u.Bio(),
		PhotoURL:    h.storage.PublicURL(u.PhotoKey()),
		ResumeURL:   h.storage.PublicURL(u.ResumeKey()),
		CreatedAt:   u.CreatedAt(),
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	u, err := h.registerUC.Execute(c.Request.Context(), userusecases.RegisterCommand{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, h.toUserResponse(u), "account created")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), userusecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"user":       h.toUserResponse(result.User),
	})
}
