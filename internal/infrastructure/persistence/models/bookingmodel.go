package models

import (
	"time"

	"gorm.io/gorm"

	"mentorhub/internal/shared/constants"
)

// BookingModel represents the database persistence model for session bookings
type BookingModel struct {
	ID        uint      `gorm:"primarykey"`
	SID       string    `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: bkg_xxx"`
	MenteeID  uint      `gorm:"not null;index:idx_mentee_bookings"`
	MentorID  uint      `gorm:"not null;index:idx_mentor_bookings"`
	Topic     string    `gorm:"not null;size:300"`
	StartsAt  time.Time `gorm:"not null;index:idx_starts_at"`
	EndsAt    time.Time `gorm:"not null"`
	Status    string    `gorm:"not null;size:20;index:idx_booking_status"`
	Note      string    `gorm:"size:1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (BookingModel) TableName() string {
	return constants.TableBookings
}
