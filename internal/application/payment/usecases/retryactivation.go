package usecases

import (
	"context"
	"fmt"

	subusecases "mentorhub/internal/application/subscription/usecases"
	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/logger"
)

// RetryActivationResult summarizes one sweep over paid-but-not-activated
// records.
type RetryActivationResult struct {
	Scanned   int
	Activated int
	Failed    int
}

// RetryActivationUseCase re-drives activation for records whose payment
// succeeded but whose ledger update failed at the time. Run periodically by
// the worker; each record is retried independently so one bad row does not
// stall the sweep.
type RetryActivationUseCase struct {
	recordRepo subscription.Repository
	activateUC *subusecases.ActivateRecordUseCase
	logger     logger.Interface
}

func NewRetryActivationUseCase(
	recordRepo subscription.Repository,
	activateUC *subusecases.ActivateRecordUseCase,
	log logger.Interface,
) *RetryActivationUseCase {
	return &RetryActivationUseCase{
		recordRepo: recordRepo,
		activateUC: activateUC,
		logger:     log,
	}
}

func (uc *RetryActivationUseCase) Execute(ctx context.Context) (*RetryActivationResult, error) {
	records, err := uc.recordRepo.ListActivationPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activation-pending records: %w", err)
	}

	result := &RetryActivationResult{Scanned: len(records)}
	for _, record := range records {
		if _, err := uc.activateUC.Execute(ctx, subusecases.ActivateRecordCommand{RecordSID: record.SID()}); err != nil {
			result.Failed++
			uc.logger.Warnw("activation retry failed",
				"record_sid", record.SID(),
				"error", err,
			)
			continue
		}
		result.Activated++
		uc.logger.Infow("activation retry succeeded",
			"record_sid", record.SID(),
			"user_email", record.UserEmail(),
			"domain", record.DomainSlug(),
		)
	}

	if result.Scanned > 0 {
		uc.logger.Infow("activation retry sweep finished",
			"scanned", result.Scanned,
			"activated", result.Activated,
			"failed", result.Failed,
		)
	}

	return result, nil
}
