package usecases

import (
	"context"

	"mentorhub/internal/application/payment/bridge"
	"mentorhub/internal/domain/payment"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// HandlePaymentSignalCommand relays one surface message to its session.
type HandlePaymentSignalCommand struct {
	SessionSID string
	// UserID is the authenticated caller; it must own the session.
	UserID uint
	// Origin is the reported browsing-context origin of the message.
	Origin  string
	Payload []byte
}

// HandlePaymentSignalResult reports what the bridge did with the signal.
type HandlePaymentSignalResult struct {
	Disposition bridge.Disposition
}

// HandlePaymentSignalUseCase routes relayed surface messages to the owning
// bridge handle. Ownership is checked here; origin trust is the bridge's job
// and happens before any state transition.
type HandlePaymentSignalUseCase struct {
	bridge *bridge.Bridge
	logger logger.Interface
}

func NewHandlePaymentSignalUseCase(br *bridge.Bridge, log logger.Interface) *HandlePaymentSignalUseCase {
	return &HandlePaymentSignalUseCase{bridge: br, logger: log}
}

func (uc *HandlePaymentSignalUseCase) Execute(ctx context.Context, cmd HandlePaymentSignalCommand) (*HandlePaymentSignalResult, error) {
	handle := uc.bridge.Get(cmd.SessionSID)
	if handle == nil {
		return nil, apperrors.NewNotFoundError("payment session not found", cmd.SessionSID)
	}
	if handle.UserID() != cmd.UserID {
		uc.logger.Warnw("payment signal from non-owning user",
			"session_sid", cmd.SessionSID,
			"user_id", cmd.UserID,
		)
		return nil, apperrors.NewForbiddenError("payment session belongs to another user")
	}

	sig := payment.ParseSignal(cmd.Origin, cmd.Payload)
	disp := handle.Deliver(sig)

	return &HandlePaymentSignalResult{Disposition: disp}, nil
}
