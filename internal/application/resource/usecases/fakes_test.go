package usecases

import (
	"context"
	"time"

	"mentorhub/internal/domain/catalog"
	"mentorhub/internal/domain/resource"
)

// fakePostRepo is an in-memory resource.Repository.
type fakePostRepo struct {
	posts     []*resource.Post
	nextID    uint
	updateErr error
	updates   int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1}
}

func (f *fakePostRepo) Create(ctx context.Context, p *resource.Post) error {
	p.SetID(f.nextID)
	f.nextID++
	f.posts = append(f.posts, p)
	return nil
}

func (f *fakePostRepo) Update(ctx context.Context, p *resource.Post) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	for i, existing := range f.posts {
		if existing.SID() == p.SID() {
			f.posts[i] = p
			return nil
		}
	}
	return resource.ErrPostNotFound
}

func (f *fakePostRepo) GetBySID(ctx context.Context, sid string) (*resource.Post, error) {
	for _, p := range f.posts {
		if p.SID() == sid {
			return p, nil
		}
	}
	return nil, resource.ErrPostNotFound
}

func (f *fakePostRepo) ListPublishedByDomain(ctx context.Context, domainSlug string, kind resource.Kind, offset, limit int) ([]*resource.Post, int64, error) {
	var matched []*resource.Post
	for _, p := range f.posts {
		if p.DomainSlug() != domainSlug || p.State() != resource.StatePublished {
			continue
		}
		if kind != "" && p.Kind() != kind {
			continue
		}
		matched = append(matched, p)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakePostRepo) ListScheduledDue(ctx context.Context, now time.Time) ([]*resource.Post, error) {
	var out []*resource.Post
	for _, p := range f.posts {
		if p.DueForPublication(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorID uint) ([]*resource.Post, error) {
	var out []*resource.Post
	for _, p := range f.posts {
		if p.AuthorID() == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeCatalogRepo is an in-memory catalog.Repository.
type fakeCatalogRepo struct {
	domains map[string]*catalog.Domain
}

func newFakeCatalogRepo(slugs ...string) *fakeCatalogRepo {
	f := &fakeCatalogRepo{domains: make(map[string]*catalog.Domain)}
	for i, slug := range slugs {
		d, err := catalog.NewDomain(slug, "Domain "+slug)
		if err != nil {
			panic(err)
		}
		d.SetID(uint(i + 1))
		f.domains[slug] = d
	}
	return f
}

func (f *fakeCatalogRepo) Create(ctx context.Context, d *catalog.Domain) error {
	f.domains[d.Slug()] = d
	return nil
}

func (f *fakeCatalogRepo) GetBySlug(ctx context.Context, slug string) (*catalog.Domain, error) {
	d, ok := f.domains[slug]
	if !ok {
		return nil, catalog.ErrDomainNotFound
	}
	return d, nil
}

func (f *fakeCatalogRepo) List(ctx context.Context) ([]*catalog.Domain, error) {
	out := make([]*catalog.Domain, 0, len(f.domains))
	for _, d := range f.domains {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, d *catalog.Domain) error {
	f.domains[d.Slug()] = d
	return nil
}

// fakeGate unlocks a fixed set of domains for everyone.
type fakeGate struct {
	unlocked map[string]bool
}

func newFakeGate(slugs ...string) *fakeGate {
	g := &fakeGate{unlocked: make(map[string]bool)}
	for _, slug := range slugs {
		g.unlocked[slug] = true
	}
	return g
}

func (g *fakeGate) IsDomainUnlocked(ctx context.Context, userEmail, domainSlug string) bool {
	return g.unlocked[domainSlug]
}
