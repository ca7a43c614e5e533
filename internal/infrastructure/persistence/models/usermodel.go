package models

import (
	"time"

	"gorm.io/gorm"

	"mentorhub/internal/shared/constants"
)

// UserModel represents the database persistence model for accounts
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: usr_xxx"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	DisplayName  string `gorm:"not null;size:100"`
	Role         string `gorm:"not null;size:20;index:idx_role"`
	Bio          string `gorm:"type:text"`
	PhotoKey     string `gorm:"size:255"`
	ResumeKey    string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
