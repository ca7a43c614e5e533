package usecases

import (
	"context"
	"fmt"

	"mentorhub/internal/domain/booking"
	"mentorhub/internal/shared/logger"
)

// ListBookingsCommand lists bookings the actor is a party to, in the given
// role.
type ListBookingsCommand struct {
	ActorID  uint
	AsMentor bool
}

type ListBookingsUseCase struct {
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewListBookingsUseCase(bookingRepo booking.Repository, log logger.Interface) *ListBookingsUseCase {
	return &ListBookingsUseCase{bookingRepo: bookingRepo, logger: log}
}

func (uc *ListBookingsUseCase) Execute(ctx context.Context, cmd ListBookingsCommand) ([]*booking.Booking, error) {
	if cmd.AsMentor {
		bookings, err := uc.bookingRepo.ListByMentor(ctx, cmd.ActorID)
		if err != nil {
			return nil, fmt.Errorf("failed to list mentor bookings: %w", err)
		}
		return bookings, nil
	}
	bookings, err := uc.bookingRepo.ListByMentee(ctx, cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentee bookings: %w", err)
	}
	return bookings, nil
}
