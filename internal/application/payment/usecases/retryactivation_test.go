package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subusecases "mentorhub/internal/application/subscription/usecases"
	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
)

func seedFlaggedRecord(t *testing.T, repo *fakeRecordRepo, email, slug string) *subscription.Record {
	t.Helper()
	r, err := subscription.NewPendingRecord(7, email, slug)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), r))
	r.MarkActivationPending()
	return r
}

func newRetryUC(repo *fakeRecordRepo) *RetryActivationUseCase {
	log := logger.NewNop()
	activateUC := subusecases.NewActivateRecordUseCase(repo, 30, biztime.FixedClock{T: workflowNow}, log)
	return NewRetryActivationUseCase(repo, activateUC, log)
}

func TestRetryActivationSweep(t *testing.T) {
	repo := newFakeRecordRepo()
	flagged := seedFlaggedRecord(t, repo, "mentee@example.com", "golang-backend")
	seedFlaggedRecord(t, repo, "other@example.com", "golang-backend")

	// A record without the flag is not touched by the sweep.
	clean, err := subscription.NewPendingRecord(9, "clean@example.com", "golang-backend")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), clean))

	result, err := newRetryUC(repo).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 2, result.Activated)
	assert.Equal(t, 0, result.Failed)

	record, err := repo.GetBySID(context.Background(), flagged.SID())
	require.NoError(t, err)
	assert.True(t, record.IsActiveAt(workflowNow))
	assert.False(t, record.ActivationPending())
	assert.True(t, clean.IsPending())
}

func TestRetryActivationSweepEmpty(t *testing.T) {
	result, err := newRetryUC(newFakeRecordRepo()).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Scanned)
}

func TestRetryActivationSweepCountsFailures(t *testing.T) {
	repo := newFakeRecordRepo()
	seedFlaggedRecord(t, repo, "mentee@example.com", "golang-backend")
	repo.setUpdateErr(assert.AnError)

	result, err := newRetryUC(repo).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 0, result.Activated)
	assert.Equal(t, 1, result.Failed)
}
