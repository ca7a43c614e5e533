package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	catalogusecases "mentorhub/internal/application/catalog/usecases"
	"mentorhub/internal/interfaces/http/middleware"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/services/storage"
	"mentorhub/internal/shared/utils"
)

type CatalogHandler struct {
	listDomainsUC  *catalogusecases.ListDomainsUseCase
	createDomainUC *catalogusecases.CreateDomainUseCase
	storage        storage.Service
	logger         logger.Interface
}

func NewCatalogHandler(
	listDomainsUC *catalogusecases.ListDomainsUseCase,
	createDomainUC *catalogusecases.CreateDomainUseCase,
	store storage.Service,
	log logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listDomainsUC:  listDomainsUC,
		createDomainUC: createDomainUC,
		storage:        store,
		logger:         log,
	}
}

type createDomainRequest struct {
	Slug        string `json:"slug" binding:"required,max=100"`
	DisplayName string `json:"display_name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type domainResponse struct {
	SID         string    `json:"sid"`
	Slug        string    `json:"slug"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description,omitempty"`
	BannerURL   string    `json:"banner_url,omitempty"`
	Unlocked    bool      `json:"unlocked"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListDomains serves the public catalog. With a valid token each entry
// carries the caller's live lock state; anonymous callers see everything
// locked.
func (h *CatalogHandler) ListDomains(c *gin.Context) {
	views, err := h.listDomainsUC.Execute(c.Request.Context(), catalogusecases.ListDomainsCommand{
		UserEmail: middleware.CurrentUserEmail(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]domainResponse, 0, len(views))
	for _, v := range views {
		items = append(items, domainResponse{
			SID:         v.Domain.SID(),
			Slug:        v.Domain.Slug(),
			DisplayName: v.Domain.DisplayName(),
			Description: v.Domain.Description(),
			BannerURL:   h.storage.PublicURL(v.Domain.BannerKey()),
			Unlocked:    v.Unlocked,
			CreatedAt:   v.Domain.CreatedAt(),
		})
	}
	utils.OKResponse(c, items)
}

func (h *CatalogHandler) CreateDomain(c *gin.Context) {
	var req createDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	d, err := h.createDomainUC.Execute(c.Request.Context(), catalogusecases.CreateDomainCommand{
		Slug:        req.Slug,
		DisplayName: req.DisplayName,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, domainResponse{
		SID:         d.SID(),
		Slug:        d.Slug(),
		DisplayName: d.DisplayName(),
		Description: d.Description(),
		CreatedAt:   d.CreatedAt(),
	}, "content domain created")
}
