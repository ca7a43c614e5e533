package models

import (
	"time"

	"gorm.io/gorm"

	"mentorhub/internal/shared/constants"
)

// PostModel represents the database persistence model for domain content
type PostModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: res_xxx"`
	DomainSlug  string `gorm:"not null;size:100;index:idx_domain_posts,priority:1"`
	AuthorID    uint   `gorm:"not null;index:idx_author_posts"`
	Kind        string `gorm:"not null;size:20;index:idx_domain_posts,priority:2"`
	Title       string `gorm:"not null;size:300"`
	Body        string `gorm:"type:longtext"`
	BannerKey   string `gorm:"size:255"`
	State       string `gorm:"not null;size:20;index:idx_post_state"`
	ScheduledAt *time.Time `gorm:"index:idx_scheduled_at"`
	PublishedAt *time.Time `gorm:"index:idx_published_at"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PostModel) TableName() string {
	return constants.TablePosts
}
