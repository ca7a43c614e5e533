package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/resource"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
)

func seedScheduledPost(t *testing.T, repo *fakePostRepo, title string, at time.Time) *resource.Post {
	t.Helper()
	p, err := resource.NewPost("golang-backend", 3, resource.KindNews, title, "body")
	require.NoError(t, err)
	require.NoError(t, p.Schedule(at, at.Add(-time.Hour)))
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPublishScheduledSweep(t *testing.T) {
	repo := newFakePostRepo()
	now := postNow

	due := seedScheduledPost(t, repo, "due", now.Add(-time.Minute))
	dueExactly := seedScheduledPost(t, repo, "due exactly now", now)
	future := seedScheduledPost(t, repo, "still future", now.Add(time.Hour))

	draft, err := resource.NewPost("golang-backend", 3, resource.KindNews, "draft", "body")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), draft))

	uc := NewPublishScheduledUseCase(repo, biztime.FixedClock{T: now}, logger.NewNop())
	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Due)
	assert.Equal(t, 2, result.Published)
	assert.Equal(t, 0, result.Failed)

	assert.Equal(t, resource.StatePublished, due.State())
	assert.Equal(t, resource.StatePublished, dueExactly.State())
	assert.Equal(t, resource.StateScheduled, future.State())
	assert.Equal(t, resource.StateDraft, draft.State())
}

func TestPublishScheduledSweepIdempotent(t *testing.T) {
	repo := newFakePostRepo()
	seedScheduledPost(t, repo, "due", postNow.Add(-time.Minute))

	uc := NewPublishScheduledUseCase(repo, biztime.FixedClock{T: postNow}, logger.NewNop())

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Published)

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Due)
	assert.Equal(t, 0, second.Published)
}

func TestPublishScheduledSweepCountsPersistFailures(t *testing.T) {
	repo := newFakePostRepo()
	seedScheduledPost(t, repo, "due", postNow.Add(-time.Minute))
	repo.updateErr = assert.AnError

	uc := NewPublishScheduledUseCase(repo, biztime.FixedClock{T: postNow}, logger.NewNop())
	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Due)
	assert.Equal(t, 0, result.Published)
	assert.Equal(t, 1, result.Failed)
}
