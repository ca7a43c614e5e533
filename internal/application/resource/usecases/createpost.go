package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorhub/internal/domain/catalog"
	"mentorhub/internal/domain/resource"
	"mentorhub/internal/shared/biztime"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// CreatePostCommand creates domain content. Mentor/admin only; the role check
// happens at the interface layer.
type CreatePostCommand struct {
	DomainSlug string
	AuthorID   uint
	Kind       resource.Kind
	Title      string
	Body       string
	// PublishNow publishes immediately; ScheduleAt arranges future
	// publication. With neither set the post stays a draft.
	PublishNow bool
	ScheduleAt *time.Time
}

type CreatePostUseCase struct {
	postRepo    resource.Repository
	catalogRepo catalog.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewCreatePostUseCase(
	postRepo resource.Repository,
	catalogRepo catalog.Repository,
	clock biztime.Clock,
	log logger.Interface,
) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:    postRepo,
		catalogRepo: catalogRepo,
		clock:       clock,
		logger:      log,
	}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (*resource.Post, error) {
	if _, err := uc.catalogRepo.GetBySlug(ctx, cmd.DomainSlug); err != nil {
		if errors.Is(err, catalog.ErrDomainNotFound) {
			return nil, apperrors.NewNotFoundError("unknown content domain", cmd.DomainSlug)
		}
		return nil, fmt.Errorf("failed to look up content domain: %w", err)
	}

	post, err := resource.NewPost(cmd.DomainSlug, cmd.AuthorID, cmd.Kind, cmd.Title, cmd.Body)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid post", err.Error())
	}

	now := uc.clock.Now()
	switch {
	case cmd.PublishNow:
		if err := post.Publish(now); err != nil {
			return nil, apperrors.NewValidationError("cannot publish post", err.Error())
		}
	case cmd.ScheduleAt != nil:
		if err := post.Schedule(*cmd.ScheduleAt, now); err != nil {
			return nil, apperrors.NewValidationError("cannot schedule post", err.Error())
		}
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Infow("post created",
		"post_sid", post.SID(),
		"domain", cmd.DomainSlug,
		"kind", string(cmd.Kind),
		"state", string(post.State()),
	)
	return post, nil
}
