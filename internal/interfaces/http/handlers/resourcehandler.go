package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	resusecases "mentorhub/internal/application/resource/usecases"
	"mentorhub/internal/domain/resource"
	"mentorhub/internal/interfaces/http/middleware"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/utils"
)

type ResourceHandler struct {
	listContentUC  *resusecases.ListDomainContentUseCase
	createPostUC   *resusecases.CreatePostUseCase
	uploadBannerUC *resusecases.UploadPostBannerUseCase
	logger         logger.Interface
}

func NewResourceHandler(
	listContentUC *resusecases.ListDomainContentUseCase,
	createPostUC *resusecases.CreatePostUseCase,
	uploadBannerUC *resusecases.UploadPostBannerUseCase,
	log logger.Interface,
) *ResourceHandler {
	return &ResourceHandler{
		listContentUC:  listContentUC,
		createPostUC:   createPostUC,
		uploadBannerUC: uploadBannerUC,
		logger:         log,
	}
}

type createPostRequest struct {
	DomainSlug string     `json:"domain_slug" binding:"required,max=100"`
	Kind       string     `json:"kind" binding:"required,oneof=material news"`
	Title      string     `json:"title" binding:"required,max=300"`
	Body       string     `json:"body" binding:"required"`
	PublishNow bool       `json:"publish_now"`
	ScheduleAt *time.Time `json:"schedule_at"`
}

type postResponse struct {
	SID         string     `json:"sid"`
	DomainSlug  string     `json:"domain_slug"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	BodyHTML    string     `json:"body_html,omitempty"`
	BannerURL   string     `json:"banner_url,omitempty"`
	State       string     `json:"state"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ListDomainContent serves published posts for subscribers. The gate runs on
// every request, so a lapsed subscription gets 403 here without any sweep.
func (h *ResourceHandler) ListDomainContent(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listContentUC.Execute(c.Request.Context(), resusecases.ListDomainContentCommand{
		UserEmail:  middleware.CurrentUserEmail(c),
		DomainSlug: c.Param("slug"),
		Kind:       resource.Kind(c.Query("kind")),
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]postResponse, 0, len(result.Posts))
	for _, v := range result.Posts {
		items = append(items, postResponse{
			SID:         v.Post.SID(),
			DomainSlug:  v.Post.DomainSlug(),
			Kind:        string(v.Post.Kind()),
			Title:       v.Post.Title(),
			BodyHTML:    v.BodyHTML,
			BannerURL:   v.BannerURL,
			State:       string(v.Post.State()),
			PublishedAt: v.Post.PublishedAt(),
			CreatedAt:   v.Post.CreatedAt(),
		})
	}
	utils.ListSuccessResponse(c, items, result.Total, p.Page, p.PageSize)
}

func (h *ResourceHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request: "+err.Error())
		return
	}

	post, err := h.createPostUC.Execute(c.Request.Context(), resusecases.CreatePostCommand{
		DomainSlug: req.DomainSlug,
		AuthorID:   middleware.CurrentUserID(c),
		Kind:       resource.Kind(req.Kind),
		Title:      req.Title,
		Body:       req.Body,
		PublishNow: req.PublishNow,
		ScheduleAt: req.ScheduleAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, postResponse{
		SID:         post.SID(),
		DomainSlug:  post.DomainSlug(),
		Kind:        string(post.Kind()),
		Title:       post.Title(),
		State:       string(post.State()),
		ScheduledAt: post.ScheduledAt(),
		PublishedAt: post.PublishedAt(),
		CreatedAt:   post.CreatedAt(),
	}, "post created")
}

func (h *ResourceHandler) UploadBanner(c *gin.Context) {
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

	url, err := h.uploadBannerUC.Execute(c.Request.Context(), resusecases.UploadPostBannerCommand{
		PostSID:  c.Param("sid"),
		AuthorID: middleware.CurrentUserID(c),
		Filename: fileHeader.Filename,
		Content:  f,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"banner_url": url})
}
