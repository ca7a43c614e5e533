// Package booking holds mentorship session bookings.
package booking

import (
	"fmt"
	"time"

	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/id"
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusRequested: true,
	StatusConfirmed: true,
	StatusCancelled: true,
	StatusCompleted: true,
}

// Booking is a mentee's request for a session slot with a mentor.
type Booking struct {
	dbID      uint
	sid       string
	menteeID  uint
	mentorID  uint
	topic     string
	startsAt  time.Time
	endsAt    time.Time
	status    Status
	note      string
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(menteeID, mentorID uint, topic string, startsAt, endsAt time.Time) (*Booking, error) {
	if menteeID == 0 {
		return nil, fmt.Errorf("mentee ID is required")
	}
	if mentorID == 0 {
		return nil, fmt.Errorf("mentor ID is required")
	}
	if menteeID == mentorID {
		return nil, fmt.Errorf("mentee and mentor cannot be the same user")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if !endsAt.After(startsAt) {
		return nil, fmt.Errorf("session end must be after start")
	}

	now := biztime.NowUTC()
	return &Booking{
		sid:       id.MustGenerateWithPrefix(id.PrefixBooking, id.DefaultLength),
		menteeID:  menteeID,
		mentorID:  mentorID,
		topic:     topic,
		startsAt:  startsAt.UTC(),
		endsAt:    endsAt.UTC(),
		status:    StatusRequested,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking rebuilds a booking from persistence.
func ReconstructBooking(
	dbID uint,
	sid string,
	menteeID, mentorID uint,
	topic string,
	startsAt, endsAt time.Time,
	status Status,
	note string,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("booking ID cannot be zero")
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid booking status: %s", status)
	}

	return &Booking{
		dbID:      dbID,
		sid:       sid,
		menteeID:  menteeID,
		mentorID:  mentorID,
		topic:     topic,
		startsAt:  startsAt,
		endsAt:    endsAt,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Booking) DBID() uint {
	return b.dbID
}

func (b *Booking) SID() string {
	return b.sid
}

func (b *Booking) MenteeID() uint {
	return b.menteeID
}

func (b *Booking) MentorID() uint {
	return b.mentorID
}

func (b *Booking) Topic() string {
	return b.topic
}

func (b *Booking) StartsAt() time.Time {
	return b.startsAt
}

func (b *Booking) EndsAt() time.Time {
	return b.endsAt
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) Note() string {
	return b.note
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Booking) SetID(dbID uint) {
	b.dbID = dbID
}

// Confirm accepts the request. Only the mentor confirms.
func (b *Booking) Confirm(note string) error {
	if b.status == StatusConfirmed {
		return nil
	}
	if b.status != StatusRequested {
		return fmt.Errorf("cannot confirm booking with status %s", b.status)
	}
	b.status = StatusConfirmed
	b.note = note
	b.updatedAt = biztime.NowUTC()
	return nil
}

// Cancel withdraws the booking. Either party may cancel before completion.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return nil
	}
	if b.status == StatusCompleted {
		return fmt.Errorf("cannot cancel a completed booking")
	}
	b.status = StatusCancelled
	b.updatedAt = biztime.NowUTC()
	return nil
}

// Complete marks a confirmed session as held.
func (b *Booking) Complete() error {
	if b.status == StatusCompleted {
		return nil
	}
	if b.status != StatusConfirmed {
		return fmt.Errorf("cannot complete booking with status %s", b.status)
	}
	b.status = StatusCompleted
	b.updatedAt = biztime.NowUTC()
	return nil
}
