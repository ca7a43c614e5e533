// Package catalog holds the catalog of subscribable content domains.
package catalog

import (
	"fmt"
	"regexp"
	"time"

	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/id"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Domain is a subscribable content category with curated materials and news.
// Catalog entries are created by administrators and read by everyone.
type Domain struct {
	dbID        uint
	sid         string
	slug        string
	displayName string
	description string
	bannerKey   string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewDomain creates a catalog entry. The slug is the stable identifier used
// by subscription records and content lookups.
func NewDomain(slug, displayName string) (*Domain, error) {
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid domain slug %q: must be lowercase letters, digits and hyphens", slug)
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	now := biztime.NowUTC()
	return &Domain{
		sid:         id.MustGenerateWithPrefix(id.PrefixDomain, id.DefaultLength),
		slug:        slug,
		displayName: displayName,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructDomain rebuilds a catalog entry from persistence.
func ReconstructDomain(
	dbID uint,
	sid, slug, displayName, description, bannerKey string,
	createdAt, updatedAt time.Time,
) (*Domain, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("domain ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("domain slug is required")
	}

	return &Domain{
		dbID:        dbID,
		sid:         sid,
		slug:        slug,
		displayName: displayName,
		description: description,
		bannerKey:   bannerKey,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (d *Domain) DBID() uint {
	return d.dbID
}

func (d *Domain) SID() string {
	return d.sid
}

func (d *Domain) Slug() string {
	return d.slug
}

func (d *Domain) DisplayName() string {
	return d.displayName
}

func (d *Domain) Description() string {
	return d.description
}

// BannerKey is the object storage key of the domain's banner image.
func (d *Domain) BannerKey() string {
	return d.bannerKey
}

func (d *Domain) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Domain) UpdatedAt() time.Time {
	return d.updatedAt
}

// SetID sets the database ID after persistence.
func (d *Domain) SetID(dbID uint) {
	d.dbID = dbID
}

func (d *Domain) UpdateDescription(description string) {
	d.description = description
	d.updatedAt = biztime.NowUTC()
}

func (d *Domain) SetBannerKey(key string) {
	d.bannerKey = key
	d.updatedAt = biztime.NowUTC()
}

// ValidSlug reports whether s is an acceptable domain slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
