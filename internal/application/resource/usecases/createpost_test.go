package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/resource"
	"mentorhub/internal/shared/biztime"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

var postNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newCreateUC(postRepo *fakePostRepo) *CreatePostUseCase {
	return NewCreatePostUseCase(postRepo, newFakeCatalogRepo("golang-backend"), biztime.FixedClock{T: postNow}, logger.NewNop())
}

func TestCreatePostDraft(t *testing.T) {
	repo := newFakePostRepo()
	uc := newCreateUC(repo)

	post, err := uc.Execute(context.Background(), CreatePostCommand{
		DomainSlug: "golang-backend",
		AuthorID:   3,
		Kind:       resource.KindMaterial,
		Title:      "Interfaces in depth",
		Body:       "# Interfaces",
	})
	require.NoError(t, err)

	assert.Equal(t, resource.StateDraft, post.State())
	assert.Len(t, repo.posts, 1)
}

func TestCreatePostPublishNow(t *testing.T) {
	uc := newCreateUC(newFakePostRepo())

	post, err := uc.Execute(context.Background(), CreatePostCommand{
		DomainSlug: "golang-backend",
		AuthorID:   3,
		Kind:       resource.KindNews,
		Title:      "Office hours moved",
		Body:       "New slot on Fridays.",
		PublishNow: true,
	})
	require.NoError(t, err)

	assert.Equal(t, resource.StatePublished, post.State())
	require.NotNil(t, post.PublishedAt())
	assert.Equal(t, postNow, *post.PublishedAt())
}

func TestCreatePostScheduled(t *testing.T) {
	uc := newCreateUC(newFakePostRepo())
	at := postNow.Add(24 * time.Hour)

	post, err := uc.Execute(context.Background(), CreatePostCommand{
		DomainSlug: "golang-backend",
		AuthorID:   3,
		Kind:       resource.KindNews,
		Title:      "Upcoming workshop",
		Body:       "Details inside.",
		ScheduleAt: &at,
	})
	require.NoError(t, err)

	assert.Equal(t, resource.StateScheduled, post.State())
	require.NotNil(t, post.ScheduledAt())
	assert.Equal(t, at, *post.ScheduledAt())
}

func TestCreatePostScheduleInPast(t *testing.T) {
	uc := newCreateUC(newFakePostRepo())
	at := postNow.Add(-time.Hour)

	_, err := uc.Execute(context.Background(), CreatePostCommand{
		DomainSlug: "golang-backend",
		AuthorID:   3,
		Kind:       resource.KindNews,
		Title:      "Too late",
		ScheduleAt: &at,
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreatePostUnknownDomain(t *testing.T) {
	uc := newCreateUC(newFakePostRepo())

	_, err := uc.Execute(context.Background(), CreatePostCommand{
		DomainSlug: "no-such-domain",
		AuthorID:   3,
		Kind:       resource.KindMaterial,
		Title:      "Orphan",
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreatePostInvalidKind(t *testing.T) {
	uc := newCreateUC(newFakePostRepo())

	_, err := uc.Execute(context.Background(), CreatePostCommand{
		DomainSlug: "golang-backend",
		AuthorID:   3,
		Kind:       resource.Kind("podcast"),
		Title:      "Nope",
	})
	assert.True(t, apperrors.IsValidationError(err))
}
