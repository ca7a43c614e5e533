package usecases

import (
	"context"
	"fmt"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
)

// ListUserSubscriptionsCommand lists the caller's ledger records.
type ListUserSubscriptionsCommand struct {
	UserEmail string
	// ActiveOnly restricts the listing to records that are unexpired right
	// now.
	ActiveOnly bool
}

// ListUserSubscriptionsUseCase reads the ledger with expiry evaluated against
// the live clock, so a record that lapsed a second ago is already absent from
// the active view without any background sweep having run.
type ListUserSubscriptionsUseCase struct {
	recordRepo subscription.Repository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewListUserSubscriptionsUseCase(
	recordRepo subscription.Repository,
	clock biztime.Clock,
	log logger.Interface,
) *ListUserSubscriptionsUseCase {
	return &ListUserSubscriptionsUseCase{
		recordRepo: recordRepo,
		clock:      clock,
		logger:     log,
	}
}

func (uc *ListUserSubscriptionsUseCase) Execute(ctx context.Context, cmd ListUserSubscriptionsCommand) ([]*subscription.Record, error) {
	if cmd.ActiveOnly {
		records, err := uc.recordRepo.ListActiveForUser(ctx, cmd.UserEmail, uc.clock.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
		}
		return records, nil
	}

	records, err := uc.recordRepo.ListByUser(ctx, cmd.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return records, nil
}
