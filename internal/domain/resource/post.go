// Package resource holds curated domain content: materials and news posts.
package resource

import (
	"fmt"
	"time"

	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/id"
)

// Kind distinguishes long-lived materials from dated news posts.
type Kind string

const (
	KindMaterial Kind = "material"
	KindNews     Kind = "news"
)

// PublishState is the post lifecycle state.
type PublishState string

const (
	StateDraft     PublishState = "draft"
	StateScheduled PublishState = "scheduled"
	StatePublished PublishState = "published"
)

var validKinds = map[Kind]bool{
	KindMaterial: true,
	KindNews:     true,
}

// Post is a piece of domain content. Gated: the body is only served to users
// whose subscription for the post's domain is unlocked.
type Post struct {
	dbID        uint
	sid         string
	domainSlug  string
	authorID    uint
	kind        Kind
	title       string
	body        string // markdown source
	bannerKey   string
	state       PublishState
	scheduledAt *time.Time
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPost creates a draft post in a domain.
func NewPost(domainSlug string, authorID uint, kind Kind, title, body string) (*Post, error) {
	if domainSlug == "" {
		return nil, fmt.Errorf("domain slug is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !validKinds[kind] {
		return nil, fmt.Errorf("invalid post kind: %s", kind)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := biztime.NowUTC()
	return &Post{
		sid:        id.MustGenerateWithPrefix(id.PrefixPost, id.DefaultLength),
		domainSlug: domainSlug,
		authorID:   authorID,
		kind:       kind,
		title:      title,
		body:       body,
		state:      StateDraft,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructPost rebuilds a post from persistence.
func ReconstructPost(
	dbID uint,
	sid, domainSlug string,
	authorID uint,
	kind Kind,
	title, body, bannerKey string,
	state PublishState,
	scheduledAt, publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Post, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("post ID cannot be zero")
	}
	if !validKinds[kind] {
		return nil, fmt.Errorf("invalid post kind: %s", kind)
	}

	return &Post{
		dbID:        dbID,
		sid:         sid,
		domainSlug:  domainSlug,
		authorID:    authorID,
		kind:        kind,
		title:       title,
		body:        body,
		bannerKey:   bannerKey,
		state:       state,
		scheduledAt: scheduledAt,
		publishedAt: publishedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Post) DBID() uint            { return p.dbID }
func (p *Post) SID() string           { return p.sid }
func (p *Post) DomainSlug() string    { return p.domainSlug }
func (p *Post) AuthorID() uint        { return p.authorID }
func (p *Post) Kind() Kind            { return p.kind }
func (p *Post) Title() string         { return p.title }
func (p *Post) Body() string          { return p.body }
func (p *Post) BannerKey() string     { return p.bannerKey }
func (p *Post) State() PublishState   { return p.state }
func (p *Post) ScheduledAt() *time.Time { return p.scheduledAt }
func (p *Post) PublishedAt() *time.Time { return p.publishedAt }
func (p *Post) CreatedAt() time.Time  { return p.createdAt }
func (p *Post) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Post) SetID(dbID uint) {
	p.dbID = dbID
}

func (p *Post) SetBannerKey(key string) {
	p.bannerKey = key
	p.updatedAt = biztime.NowUTC()
}

func (p *Post) UpdateContent(title, body string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	p.title = title
	p.body = body
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Schedule arranges publication at a future instant.
func (p *Post) Schedule(at time.Time, now time.Time) error {
	if p.state == StatePublished {
		return fmt.Errorf("post %s is already published", p.sid)
	}
	if !at.After(now) {
		return fmt.Errorf("scheduled time must be in the future")
	}
	atUTC := at.UTC()
	p.state = StateScheduled
	p.scheduledAt = &atUTC
	p.updatedAt = now.UTC()
	return nil
}

// Publish makes the post visible immediately. Idempotent.
func (p *Post) Publish(now time.Time) error {
	if p.state == StatePublished {
		return nil
	}
	nowUTC := now.UTC()
	p.state = StatePublished
	p.publishedAt = &nowUTC
	p.scheduledAt = nil
	p.updatedAt = nowUTC
	return nil
}

// DueForPublication reports whether a scheduled post's time has passed.
func (p *Post) DueForPublication(now time.Time) bool {
	return p.state == StateScheduled && p.scheduledAt != nil && !p.scheduledAt.After(now)
}
