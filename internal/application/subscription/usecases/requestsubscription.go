package usecases

import (
	"context"
	"errors"
	"fmt"

	"mentorhub/internal/domain/catalog"
	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// RequestSubscriptionCommand asks for a subscription to a content domain.
type RequestSubscriptionCommand struct {
	UserID     uint
	UserEmail  string
	DomainSlug string
}

// RequestSubscriptionResult carries the pending record the payment flow will
// be scoped to. Reused is true when an abandoned pending request was picked
// up instead of creating a duplicate.
type RequestSubscriptionResult struct {
	Record *subscription.Record
	Reused bool
}

// RequestSubscriptionUseCase is the Unsubscribed -> RequestPending
// transition. It looks up an existing record for (user, domain) first: a
// pending record is reused, an active unexpired record short-circuits with
// "already subscribed", and only otherwise is a new pending record created.
type RequestSubscriptionUseCase struct {
	recordRepo  subscription.Repository
	catalogRepo catalog.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewRequestSubscriptionUseCase(
	recordRepo subscription.Repository,
	catalogRepo catalog.Repository,
	clock biztime.Clock,
	log logger.Interface,
) *RequestSubscriptionUseCase {
	return &RequestSubscriptionUseCase{
		recordRepo:  recordRepo,
		catalogRepo: catalogRepo,
		clock:       clock,
		logger:      log,
	}
}

func (uc *RequestSubscriptionUseCase) Execute(ctx context.Context, cmd RequestSubscriptionCommand) (*RequestSubscriptionResult, error) {
	if _, err := uc.catalogRepo.GetBySlug(ctx, cmd.DomainSlug); err != nil {
		if errors.Is(err, catalog.ErrDomainNotFound) {
			return nil, apperrors.NewNotFoundError("unknown content domain", cmd.DomainSlug)
		}
		return nil, fmt.Errorf("failed to look up content domain: %w", err)
	}

	now := uc.clock.Now()

	existing, err := uc.recordRepo.FindByUserAndDomain(ctx, cmd.UserEmail, cmd.DomainSlug)
	if err != nil && !errors.Is(err, subscription.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up existing subscription: %w", err)
	}

	if existing != nil {
		if existing.IsActiveAt(now) {
			return nil, apperrors.NewConflictError("already subscribed", cmd.DomainSlug)
		}
		if existing.IsPending() {
			uc.logger.Infow("reusing pending subscription request",
				"record_sid", existing.SID(),
				"user_email", cmd.UserEmail,
				"domain", cmd.DomainSlug,
			)
			return &RequestSubscriptionResult{Record: existing, Reused: true}, nil
		}
		// Lapsed record. The stored row may still say active and hold
		// the open-pair slot; reconcile it before inserting the fresh
		// pending request, or the insert collides with its own corpse.
		if existing.Status() != subscription.StatusExpired {
			if err := existing.MarkExpired(now); err != nil {
				return nil, fmt.Errorf("failed to expire lapsed subscription: %w", err)
			}
			if err := uc.recordRepo.Update(ctx, existing); err != nil {
				return nil, fmt.Errorf("failed to persist expired subscription: %w", err)
			}
		}
	}

	record, err := subscription.NewPendingRecord(cmd.UserID, cmd.UserEmail, cmd.DomainSlug)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid subscription request", err.Error())
	}

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		if apperrors.IsDuplicateError(err) {
			// Lost a check-then-insert race; the winner's pending record is
			// the one to reuse.
			winner, findErr := uc.recordRepo.FindByUserAndDomain(ctx, cmd.UserEmail, cmd.DomainSlug)
			if findErr == nil && winner != nil && winner.IsPending() {
				return &RequestSubscriptionResult{Record: winner, Reused: true}, nil
			}
			return nil, apperrors.NewConflictError("subscription request already exists", cmd.DomainSlug)
		}
		return nil, fmt.Errorf("failed to create subscription request: %w", err)
	}

	uc.logger.Infow("subscription request created",
		"record_sid", record.SID(),
		"user_email", cmd.UserEmail,
		"domain", cmd.DomainSlug,
	)

	return &RequestSubscriptionResult{Record: record}, nil
}
