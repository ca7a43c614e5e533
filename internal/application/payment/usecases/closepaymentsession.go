package usecases

import (
	"context"

	"mentorhub/internal/application/payment/bridge"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// ClosePaymentSessionCommand closes a session, typically the user dismissing
// the payment surface before paying.
type ClosePaymentSessionCommand struct {
	SessionSID string
	UserID     uint
}

// ClosePaymentSessionResult reports the terminal outcome. A close before any
// success is a cancellation; the pending ledger record is left untouched for
// a later retry.
type ClosePaymentSessionResult struct {
	Outcome bridge.Outcome
}

type ClosePaymentSessionUseCase struct {
	bridge *bridge.Bridge
	logger logger.Interface
}

func NewClosePaymentSessionUseCase(br *bridge.Bridge, log logger.Interface) *ClosePaymentSessionUseCase {
	return &ClosePaymentSessionUseCase{bridge: br, logger: log}
}

func (uc *ClosePaymentSessionUseCase) Execute(ctx context.Context, cmd ClosePaymentSessionCommand) (*ClosePaymentSessionResult, error) {
	handle := uc.bridge.Get(cmd.SessionSID)
	if handle == nil {
		return nil, apperrors.NewNotFoundError("payment session not found", cmd.SessionSID)
	}
	if handle.UserID() != cmd.UserID {
		return nil, apperrors.NewForbiddenError("payment session belongs to another user")
	}

	outcome := handle.Close()

	return &ClosePaymentSessionResult{Outcome: outcome}, nil
}
