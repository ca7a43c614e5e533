package usecases

import (
	"context"
	"fmt"
	"time"

	"mentorhub/internal/application/payment/bridge"
	"mentorhub/internal/application/payment/surface"
	subusecases "mentorhub/internal/application/subscription/usecases"
	"mentorhub/internal/domain/payment"
	"mentorhub/internal/domain/subscription"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/goroutine"
	"mentorhub/internal/shared/logger"
)

// OpenPaymentSessionCommand starts the payment workflow for a content domain.
type OpenPaymentSessionCommand struct {
	UserID     uint
	UserEmail  string
	DomainSlug string
}

// OpenPaymentSessionResult is what the client needs to render the payment
// surface and talk to the session.
type OpenPaymentSessionResult struct {
	SessionSID string
	SurfaceURL string
	RecordSID  string
	// ReusedRecord is true when an abandoned pending request was picked up.
	ReusedRecord bool
	// ReusedSession is true when an open session for the same pair was
	// returned instead of opening a second surface.
	ReusedSession bool
}

// OpenPaymentSessionUseCase orchestrates subscribe-button-to-open-surface:
// claim the (user, domain) session index, ensure a pending ledger record,
// open a bridge session whose success callback activates that record. An
// already-active subscription short-circuits before any session is opened.
type OpenPaymentSessionUseCase struct {
	bridge       *bridge.Bridge
	surface      *surface.Surface
	requestUC    *subusecases.RequestSubscriptionUseCase
	activateUC   *subusecases.ActivateRecordUseCase
	recordRepo   subscription.Repository
	sessionIndex SessionIndex
	notifier     SupportNotifier

	loadTimeout       time.Duration
	successCloseDelay time.Duration
	sessionTTL        time.Duration

	logger logger.Interface
}

func NewOpenPaymentSessionUseCase(
	br *bridge.Bridge,
	surf *surface.Surface,
	requestUC *subusecases.RequestSubscriptionUseCase,
	activateUC *subusecases.ActivateRecordUseCase,
	recordRepo subscription.Repository,
	sessionIndex SessionIndex,
	notifier SupportNotifier,
	loadTimeout, successCloseDelay, sessionTTL time.Duration,
	log logger.Interface,
) *OpenPaymentSessionUseCase {
	return &OpenPaymentSessionUseCase{
		bridge:            br,
		surface:           surf,
		requestUC:         requestUC,
		activateUC:        activateUC,
		recordRepo:        recordRepo,
		sessionIndex:      sessionIndex,
		notifier:          notifier,
		loadTimeout:       loadTimeout,
		successCloseDelay: successCloseDelay,
		sessionTTL:        sessionTTL,
		logger:            log,
	}
}

func (uc *OpenPaymentSessionUseCase) Execute(ctx context.Context, cmd OpenPaymentSessionCommand) (*OpenPaymentSessionResult, error) {
	acquired, err := uc.sessionIndex.Acquire(ctx, cmd.UserEmail, cmd.DomainSlug, uc.sessionTTL)
	if err != nil {
		// The index is a UX dedup, not a correctness guard; the ledger's
		// uniqueness constraint still prevents duplicate records.
		uc.logger.Warnw("session index unavailable, proceeding without dedup",
			"user_email", cmd.UserEmail,
			"domain", cmd.DomainSlug,
			"error", err,
		)
	} else if !acquired {
		// A session for this pair is already open: a double-clicked
		// subscribe gets its existing session back, never a second surface.
		if existing := uc.existingSession(ctx, cmd); existing != nil {
			return existing, nil
		}
		return nil, apperrors.NewConflictError("a payment session for this domain is already in progress")
	}

	indexHeld := err == nil
	release := func() {
		if indexHeld {
			if relErr := uc.sessionIndex.Release(context.Background(), cmd.UserEmail, cmd.DomainSlug); relErr != nil {
				uc.logger.Warnw("failed to release session index", "error", relErr)
			}
		}
	}

	reqResult, reqErr := uc.requestUC.Execute(ctx, subusecases.RequestSubscriptionCommand{
		UserID:     cmd.UserID,
		UserEmail:  cmd.UserEmail,
		DomainSlug: cmd.DomainSlug,
	})
	if reqErr != nil {
		release()
		return nil, reqErr
	}
	record := reqResult.Record

	sess, err := payment.NewSession(record.SID(), cmd.DomainSlug, cmd.UserID, cmd.UserEmail)
	if err != nil {
		release()
		return nil, fmt.Errorf("failed to create payment session: %w", err)
	}

	handle, err := uc.bridge.Open(bridge.HandleConfig{
		Session:           sess,
		SurfaceURL:        uc.surface.URLFor(record.SID(), cmd.DomainSlug, cmd.UserEmail),
		TrustedOrigin:     uc.surface.TrustedOrigin(),
		LoadTimeout:       uc.loadTimeout,
		SuccessCloseDelay: uc.successCloseDelay,
		OnSuccess: func(receiptURL string) error {
			return uc.activateFromSuccess(record.SID(), receiptURL)
		},
	})
	if err != nil {
		release()
		return nil, fmt.Errorf("failed to open payment session: %w", err)
	}

	if indexHeld {
		goroutine.SafeGo(uc.logger, "payment-session-index-release", func() {
			<-handle.Done()
			if relErr := uc.sessionIndex.Release(context.Background(), cmd.UserEmail, cmd.DomainSlug); relErr != nil {
				uc.logger.Warnw("failed to release session index after close", "error", relErr)
			}
		})
	}

	return &OpenPaymentSessionResult{
		SessionSID:   handle.SID(),
		SurfaceURL:   handle.SurfaceURL(),
		RecordSID:    record.SID(),
		ReusedRecord: reqResult.Reused,
	}, nil
}

// existingSession finds the open handle for the caller's pending record when
// the session index reports the pair as claimed. Returns nil when the claim
// belongs to a session this process does not hold (another instance, or a
// stale claim waiting out its TTL).
func (uc *OpenPaymentSessionUseCase) existingSession(ctx context.Context, cmd OpenPaymentSessionCommand) *OpenPaymentSessionResult {
	record, err := uc.recordRepo.FindByUserAndDomain(ctx, cmd.UserEmail, cmd.DomainSlug)
	if err != nil || !record.IsPending() {
		return nil
	}
	handle := uc.bridge.GetByRecord(record.SID())
	if handle == nil || handle.UserID() != cmd.UserID {
		return nil
	}
	return &OpenPaymentSessionResult{
		SessionSID:    handle.SID(),
		SurfaceURL:    handle.SurfaceURL(),
		RecordSID:     record.SID(),
		ReusedRecord:  true,
		ReusedSession: true,
	}
}

// activateFromSuccess runs inside the bridge's at-most-once success callback.
// It deliberately uses a fresh context: the originating request may already
// be gone, and a trusted payment success must not be abandoned because of it.
func (uc *OpenPaymentSessionUseCase) activateFromSuccess(recordSID, receiptURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := uc.activateUC.Execute(ctx, subusecases.ActivateRecordCommand{RecordSID: recordSID})
	if err == nil {
		return nil
	}

	uc.logger.Errorw("payment succeeded but activation failed",
		"record_sid", recordSID,
		"receipt_url", receiptURL,
		"error", err,
	)

	record, getErr := uc.recordRepo.GetBySID(ctx, recordSID)
	if getErr != nil {
		uc.logger.Errorw("cannot flag record for activation retry",
			"record_sid", recordSID,
			"error", getErr,
		)
		return apperrors.NewActivationPendingError("payment received, activation pending", recordSID)
	}

	record.MarkActivationPending()
	if upErr := uc.recordRepo.Update(ctx, record); upErr != nil {
		uc.logger.Errorw("failed to persist activation-pending flag",
			"record_sid", recordSID,
			"error", upErr,
		)
	}

	if uc.notifier != nil {
		rec := record
		goroutine.SafeGo(uc.logger, "activation-failure-notify", func() {
			nctx, ncancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer ncancel()
			if nerr := uc.notifier.NotifyActivationFailure(nctx, rec, err); nerr != nil {
				uc.logger.Warnw("failed to notify support of activation failure",
					"record_sid", recordSID,
					"error", nerr,
				)
			}
		})
	}

	return apperrors.NewActivationPendingError("payment received, activation pending", recordSID)
}
