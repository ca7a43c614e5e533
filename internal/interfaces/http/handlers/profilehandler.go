package handlers

import (
	"github.com/gin-gonic/gin"

	userusecases "mentorhub/internal/application/user/usecases"
	"mentorhub/internal/domain/user"
	"mentorhub/internal/interfaces/http/middleware"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/services/storage"
	"mentorhub/internal/shared/utils"
)

type ProfileHandler struct {
	updateProfileUC *userusecases.UpdateProfileUseCase
	uploadUC        *userusecases.UploadProfileObjectUseCase
	listMentorsUC   *userusecases.ListMentorsUseCase
	userRepo        user.Repository
	storage         storage.Service
	logger          logger.Interface
}

func NewProfileHandler(
	updateProfileUC *userusecases.UpdateProfileUseCase,
	uploadUC *userusecases.UploadProfileObjectUseCase,
	listMentorsUC *userusecases.ListMentorsUseCase,
	userRepo user.Repository,
	store storage.Service,
	log logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		updateProfileUC: updateProfileUC,
		uploadUC:        uploadUC,
		listMentorsUC:   listMentorsUC,
		userRepo:        userRepo,
		storage:         store,
		logger:          log,
	}
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=100"`
	Bio         string `json:"bio" binding:"max=2000"`
}

func (h *ProfileHandler) toUserResponse(u *user.User) userResponse {
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

func (h *ProfileHandler) Me(c *gin.Context) {
	u, err := h.userRepo.GetByID(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, h.toUserResponse(u))
}

func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	u, err := h.updateProfileUC.Execute(c.Request.Context(), userusecases.UpdateProfileCommand{
		UserID:      middleware.CurrentUserID(c),
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, h.toUserResponse(u))
}

func (h *ProfileHandler) upload(c *gin.Context, kind userusecases.ProfileUploadKind) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, 400, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, 400, "cannot read uploaded file")
		return
	}
	defer f.Close()

	url, err := h.uploadUC.Execute(c.Request.Context(), userusecases.UploadProfileObjectCommand{
		UserID:   middleware.CurrentUserID(c),
		Kind:     kind,
		Filename: fileHeader.Filename,
		Content:  f,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"url": url})
}

func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	h.upload(c, userusecases.UploadPhoto)
}

func (h *ProfileHandler) UploadResume(c *gin.Context) {
	h.upload(c, userusecases.UploadResume)
}

func (h *ProfileHandler) ListMentors(c *gin.Context) {
	mentors, err := h.listMentorsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]userResponse, 0, len(mentors))
	for _, m := range mentors {
		items = append(items, h.toUserResponse(m))
	}
	utils.OKResponse(c, items)
}
