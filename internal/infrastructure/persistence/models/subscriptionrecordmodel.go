package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mentorhub/internal/shared/constants"
)

// SubscriptionRecordModel represents the database persistence model for
// ledger records. This is the anti-corruption layer between domain and
// database.
//
// The partial uniqueness the ledger needs (at most one non-terminal record
// per user/domain) is backed by ActivePairKey: set to "email|slug" while the
// record is pending or active, NULL once terminal, under a unique index.
type SubscriptionRecordModel struct {
	ID                uint    `gorm:"primarykey"`
	SID               string  `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	UserID            uint    `gorm:"not null;index:idx_user_record"`
	UserEmail         string  `gorm:"not null;size:255;index:idx_email_domain,priority:1"`
	DomainSlug        string  `gorm:"not null;size:100;index:idx_email_domain,priority:2"`
	Status            string  `gorm:"not null;size:20;index:idx_record_status"`
	ExpiresAt         *time.Time `gorm:"index:idx_expires_at"`
	ActivationPending bool    `gorm:"not null;default:false;index:idx_activation_pending"`
	ActivePairKey     *string `gorm:"uniqueIndex;size:360"`
	Metadata          datatypes.JSON
	Version           int `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionRecordModel) TableName() string {
	return constants.TableSubscriptionRecords
}

// BeforeCreate hook for GORM
func (s *SubscriptionRecordModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
