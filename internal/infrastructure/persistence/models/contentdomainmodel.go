package models

import (
	"time"

	"gorm.io/gorm"

	"mentorhub/internal/shared/constants"
)

// ContentDomainModel represents the database persistence model for the domain
// catalog
type ContentDomainModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: dom_xxx"`
	Slug        string `gorm:"uniqueIndex;not null;size:100"`
	DisplayName string `gorm:"not null;size:200"`
	Description string `gorm:"type:text"`
	BannerKey   string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ContentDomainModel) TableName() string {
	return constants.TableContentDomains
}
