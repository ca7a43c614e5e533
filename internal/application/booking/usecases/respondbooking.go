package usecases

import (
	"context"
	"errors"
	"fmt"

	"mentorhub/internal/domain/booking"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// BookingAction is a lifecycle action requested against a booking.
type BookingAction string

const (
	ActionConfirm  BookingAction = "confirm"
	ActionCancel   BookingAction = "cancel"
	ActionComplete BookingAction = "complete"
)

// RespondBookingCommand applies a lifecycle action. Confirm and complete are
// mentor-only; either party may cancel.
type RespondBookingCommand struct {
	BookingSID string
	ActorID    uint
	Action     BookingAction
	Note       string
}

type RespondBookingUseCase struct {
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewRespondBookingUseCase(bookingRepo booking.Repository, log logger.Interface) *RespondBookingUseCase {
	return &RespondBookingUseCase{bookingRepo: bookingRepo, logger: log}
}

func (uc *RespondBookingUseCase) Execute(ctx context.Context, cmd RespondBookingCommand) (*booking.Booking, error) {
	b, err := uc.bookingRepo.GetBySID(ctx, cmd.BookingSID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, apperrors.NewNotFoundError("booking not found", cmd.BookingSID)
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	switch cmd.Action {
	case ActionConfirm:
		if cmd.ActorID != b.MentorID() {
			return nil, apperrors.NewForbiddenError("only the mentor may confirm")
		}
		if err := b.Confirm(cmd.Note); err != nil {
			return nil, apperrors.NewValidationError("cannot confirm booking", err.Error())
		}
	case ActionCancel:
		if cmd.ActorID != b.MentorID() && cmd.ActorID != b.MenteeID() {
			return nil, apperrors.NewForbiddenError("not a party to this booking")
		}
		if err := b.Cancel(); err != nil {
			return nil, apperrors.NewValidationError("cannot cancel booking", err.Error())
		}
	case ActionComplete:
		if cmd.ActorID != b.MentorID() {
			return nil, apperrors.NewForbiddenError("only the mentor may complete")
		}
		if err := b.Complete(); err != nil {
			return nil, apperrors.NewValidationError("cannot complete booking", err.Error())
		}
	default:
		return nil, apperrors.NewValidationError("unknown booking action", string(cmd.Action))
	}

	if err := uc.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	uc.logger.Infow("booking updated",
		"booking_sid", b.SID(),
		"action", string(cmd.Action),
		"status", string(b.Status()),
	)
	return b, nil
}
