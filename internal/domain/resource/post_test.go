package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftPost(t *testing.T) *Post {
	t.Helper()
	p, err := NewPost("golang-backend", 3, KindMaterial, "Interfaces in depth", "# Interfaces\nbody")
	require.NoError(t, err)
	return p
}

func TestNewPost(t *testing.T) {
	p := newDraftPost(t)

	assert.NotEmpty(t, p.SID())
	assert.Equal(t, StateDraft, p.State())
	assert.Nil(t, p.ScheduledAt())
	assert.Nil(t, p.PublishedAt())
}

func TestNewPostValidation(t *testing.T) {
	_, err := NewPost("", 3, KindMaterial, "t", "b")
	assert.Error(t, err)

	_, err = NewPost("slug", 0, KindMaterial, "t", "b")
	assert.Error(t, err)

	_, err = NewPost("slug", 3, Kind("podcast"), "t", "b")
	assert.Error(t, err)

	_, err = NewPost("slug", 3, KindNews, "", "b")
	assert.Error(t, err)
}

func TestSchedule(t *testing.T) {
	p := newDraftPost(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, p.Schedule(now.Add(time.Hour), now))
	assert.Equal(t, StateScheduled, p.State())
	require.NotNil(t, p.ScheduledAt())
	assert.Equal(t, now.Add(time.Hour), *p.ScheduledAt())
}

func TestScheduleRejectsPastTime(t *testing.T) {
	p := newDraftPost(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Error(t, p.Schedule(now.Add(-time.Minute), now))
	assert.Error(t, p.Schedule(now, now))
	assert.Equal(t, StateDraft, p.State())
}

func TestScheduleRejectsPublishedPost(t *testing.T) {
	p := newDraftPost(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, p.Publish(now))

	assert.Error(t, p.Schedule(now.Add(time.Hour), now))
}

func TestPublish(t *testing.T) {
	p := newDraftPost(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, p.Schedule(now.Add(time.Hour), now))

	require.NoError(t, p.Publish(now.Add(2*time.Hour)))
	assert.Equal(t, StatePublished, p.State())
	assert.Nil(t, p.ScheduledAt())
	require.NotNil(t, p.PublishedAt())

	// Idempotent: the original publication time survives.
	first := *p.PublishedAt()
	require.NoError(t, p.Publish(now.Add(3*time.Hour)))
	assert.Equal(t, first, *p.PublishedAt())
}

func TestDueForPublication(t *testing.T) {
	p := newDraftPost(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := now.Add(time.Hour)
	require.NoError(t, p.Schedule(at, now))

	assert.False(t, p.DueForPublication(now))
	assert.True(t, p.DueForPublication(at))
	assert.True(t, p.DueForPublication(at.Add(time.Minute)))

	require.NoError(t, p.Publish(at))
	assert.False(t, p.DueForPublication(at.Add(time.Hour)))
}
