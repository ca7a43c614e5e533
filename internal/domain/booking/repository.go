package booking

import (
	"context"
	"errors"
)

// ErrBookingNotFound is returned when a booking lookup finds nothing.
var ErrBookingNotFound = errors.New("booking not found")

// Repository is the persistence port for bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	GetBySID(ctx context.Context, sid string) (*Booking, error)
	ListByMentee(ctx context.Context, menteeID uint) ([]*Booking, error)
	ListByMentor(ctx context.Context, mentorID uint) ([]*Booking, error)
}
