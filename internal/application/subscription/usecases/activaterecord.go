package usecases

import (
	"context"
	"fmt"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// ActivateRecordCommand activates a ledger record after a trusted payment
// success. DurationDays of zero falls back to the configured default.
type ActivateRecordCommand struct {
	RecordSID    string
	DurationDays int
}

// ActivateRecordUseCase is the single authority for the pending -> active
// transition. Activation never errors on a repeat call and never creates a
// second record: re-activating re-extends the expiry from the current
// instant.
type ActivateRecordUseCase struct {
	recordRepo   subscription.Repository
	durationDays int
	clock        biztime.Clock
	logger       logger.Interface
}

func NewActivateRecordUseCase(
	recordRepo subscription.Repository,
	durationDays int,
	clock biztime.Clock,
	log logger.Interface,
) *ActivateRecordUseCase {
	return &ActivateRecordUseCase{
		recordRepo:   recordRepo,
		durationDays: durationDays,
		clock:        clock,
		logger:       log,
	}
}

func (uc *ActivateRecordUseCase) Execute(ctx context.Context, cmd ActivateRecordCommand) (*subscription.Record, error) {
	record, err := uc.recordRepo.GetBySID(ctx, cmd.RecordSID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("subscription record not found", cmd.RecordSID)
	}

	days := cmd.DurationDays
	if days <= 0 {
		days = uc.durationDays
	}

	now := uc.clock.Now()

	// Re-activating an already-active record is legal and re-anchors the
	// expiry at this call's now.
	if err := record.Activate(now, days); err != nil {
		return nil, apperrors.NewValidationError("cannot activate record", err.Error())
	}

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist activation: %w", err)
	}

	uc.logger.Infow("subscription activated",
		"record_sid", record.SID(),
		"user_email", record.UserEmail(),
		"domain", record.DomainSlug(),
		"expires_at", record.ExpiresAt(),
	)

	return record, nil
}
