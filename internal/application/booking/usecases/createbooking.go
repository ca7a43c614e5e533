package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorhub/internal/domain/booking"
	"mentorhub/internal/domain/user"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

// CreateBookingCommand requests a mentorship session with a mentor.
type CreateBookingCommand struct {
	MenteeID  uint
	MentorSID string
	Topic     string
	StartsAt  time.Time
	EndsAt    time.Time
}

type CreateBookingUseCase struct {
	bookingRepo booking.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewCreateBookingUseCase(bookingRepo booking.Repository, userRepo user.Repository, log logger.Interface) *CreateBookingUseCase {
	return &CreateBookingUseCase{bookingRepo: bookingRepo, userRepo: userRepo, logger: log}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	mentor, err := uc.userRepo.GetBySID(ctx, cmd.MentorSID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("mentor not found", cmd.MentorSID)
		}
		return nil, fmt.Errorf("failed to look up mentor: %w", err)
	}
	if !mentor.IsMentor() {
		return nil, apperrors.NewValidationError("bookings can only target mentors")
	}

	b, err := booking.NewBooking(cmd.MenteeID, mentor.DBID(), cmd.Topic, cmd.StartsAt, cmd.EndsAt)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid booking", err.Error())
	}

	if err := uc.bookingRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	uc.logger.Infow("booking requested",
		"booking_sid", b.SID(),
		"mentee_id", cmd.MenteeID,
		"mentor_sid", cmd.MentorSID,
	)
	return b, nil
}
