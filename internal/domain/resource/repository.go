package resource

import (
	"context"
	"errors"
	"time"
)

// ErrPostNotFound is returned when a post lookup finds nothing.
var ErrPostNotFound = errors.New("post not found")

// Repository is the persistence port for posts.
type Repository interface {
	Create(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error
	GetBySID(ctx context.Context, sid string) (*Post, error)
	// ListPublishedByDomain returns published posts in a domain, newest
	// first, paginated.
	ListPublishedByDomain(ctx context.Context, domainSlug string, kind Kind, offset, limit int) ([]*Post, int64, error)
	// ListScheduledDue returns scheduled posts whose scheduled time is at or
	// before now.
	ListScheduledDue(ctx context.Context, now time.Time) ([]*Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*Post, error)
}
