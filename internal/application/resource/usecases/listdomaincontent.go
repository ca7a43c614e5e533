package usecases

import (
	"context"
	"fmt"

	"mentorhub/internal/domain/resource"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/services/markdown"
	"mentorhub/internal/shared/services/storage"
)

// ContentGate answers whether a user currently holds access to a domain.
type ContentGate interface {
	IsDomainUnlocked(ctx context.Context, userEmail, domainSlug string) bool
}

// PostView is a published post prepared for a client: body rendered to
// sanitized HTML, banner key resolved to a URL.
type PostView struct {
	Post      *resource.Post
	BodyHTML  string
	BannerURL string
}

// ListDomainContentCommand lists published posts in a domain. Access is
// checked against the caller's subscription; the gate, not the listing,
// decides.
type ListDomainContentCommand struct {
	UserEmail  string
	DomainSlug string
	Kind       resource.Kind
	Page       int
	PageSize   int
}

type ListDomainContentResult struct {
	Posts []PostView
	Total int64
}

// ListDomainContentUseCase serves gated domain content. The subscription
// check runs on every request with live expiry, so a lapsed subscription
// locks content on its very next request.
type ListDomainContentUseCase struct {
	postRepo resource.Repository
	gate     ContentGate
	markdown markdown.Service
	storage  storage.Service
	logger   logger.Interface
}

func NewListDomainContentUseCase(
	postRepo resource.Repository,
	gate ContentGate,
	md markdown.Service,
	store storage.Service,
	log logger.Interface,
) *ListDomainContentUseCase {
	return &ListDomainContentUseCase{
		postRepo: postRepo,
		gate:     gate,
		markdown: md,
		storage:  store,
		logger:   log,
	}
}

func (uc *ListDomainContentUseCase) Execute(ctx context.Context, cmd ListDomainContentCommand) (*ListDomainContentResult, error) {
	if !uc.gate.IsDomainUnlocked(ctx, cmd.UserEmail, cmd.DomainSlug) {
		return nil, apperrors.NewForbiddenError("subscription required for this domain")
	}

	offset := (cmd.Page - 1) * cmd.PageSize
	posts, total, err := uc.postRepo.ListPublishedByDomain(ctx, cmd.DomainSlug, cmd.Kind, offset, cmd.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list domain content: %w", err)
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		html, err := uc.markdown.ToHTMLSanitized(p.Body())
		if err != nil {
			uc.logger.Warnw("failed to render post body",
				"post_sid", p.SID(),
				"error", err,
			)
			html = ""
		}
		views = append(views, PostView{
			Post:      p,
			BodyHTML:  html,
			BannerURL: uc.storage.PublicURL(p.BannerKey()),
		})
	}

	return &ListDomainContentResult{Posts: views, Total: total}, nil
}
