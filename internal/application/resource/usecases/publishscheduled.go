package usecases

import (
	"context"
	"fmt"

	"mentorhub/internal/domain/resource"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
)

// PublishScheduledResult summarizes one publication sweep.
type PublishScheduledResult struct {
	Due       int
	Published int
	Failed    int
}

// PublishScheduledUseCase publishes every scheduled post whose time has
// passed. Run periodically by the worker and exposed as a jobs endpoint.
type PublishScheduledUseCase struct {
	postRepo resource.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewPublishScheduledUseCase(postRepo resource.Repository, clock biztime.Clock, log logger.Interface) *PublishScheduledUseCase {
	return &PublishScheduledUseCase{postRepo: postRepo, clock: clock, logger: log}
}

func (uc *PublishScheduledUseCase) Execute(ctx context.Context) (*PublishScheduledResult, error) {
	now := uc.clock.Now()

	due, err := uc.postRepo.ListScheduledDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due posts: %w", err)
	}

	result := &PublishScheduledResult{Due: len(due)}
	for _, post := range due {
		if err := post.Publish(now); err != nil {
			result.Failed++
			continue
		}
		if err := uc.postRepo.Update(ctx, post); err != nil {
			result.Failed++
			uc.logger.Warnw("failed to persist scheduled publication",
				"post_sid", post.SID(),
				"error", err,
			)
			continue
		}
		result.Published++
		uc.logger.Infow("scheduled post published",
			"post_sid", post.SID(),
			"domain", post.DomainSlug(),
		)
	}

	return result, nil
}
