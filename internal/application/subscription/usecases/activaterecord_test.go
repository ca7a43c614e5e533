package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

func seedPendingRecord(t *testing.T, repo *fakeRecordRepo) *subscription.Record {
	t.Helper()
	r, err := subscription.NewPendingRecord(7, "mentee@example.com", "golang-backend")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestActivateRecordActivatesPending(t *testing.T) {
	repo := newFakeRecordRepo()
	record := seedPendingRecord(t, repo)
	uc := NewActivateRecordUseCase(repo, 30, biztime.FixedClock{T: testNow}, logger.NewNop())

	activated, err := uc.Execute(context.Background(), ActivateRecordCommand{RecordSID: record.SID()})
	require.NoError(t, err)

	assert.Equal(t, subscription.StatusActive, activated.Status())
	require.NotNil(t, activated.ExpiresAt())
	assert.Equal(t, testNow.AddDate(0, 0, 30), *activated.ExpiresAt())
	assert.Equal(t, 1, repo.updates)
}

func TestActivateRecordExplicitDuration(t *testing.T) {
	repo := newFakeRecordRepo()
	record := seedPendingRecord(t, repo)
	uc := NewActivateRecordUseCase(repo, 30, biztime.FixedClock{T: testNow}, logger.NewNop())

	activated, err := uc.Execute(context.Background(), ActivateRecordCommand{
		RecordSID:    record.SID(),
		DurationDays: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, 90), *activated.ExpiresAt())
}

func TestActivateRecordUnknownSID(t *testing.T) {
	uc := NewActivateRecordUseCase(newFakeRecordRepo(), 30, biztime.FixedClock{T: testNow}, logger.NewNop())

	_, err := uc.Execute(context.Background(), ActivateRecordCommand{RecordSID: "sub_missing"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestActivateRecordRepeatCall(t *testing.T) {
	repo := newFakeRecordRepo()
	record := seedPendingRecord(t, repo)

	first, err := NewActivateRecordUseCase(repo, 30, biztime.FixedClock{T: testNow}, logger.NewNop()).
		Execute(context.Background(), ActivateRecordCommand{RecordSID: record.SID()})
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, 30), *first.ExpiresAt())

	// A repeat activation ten days later neither errors nor creates a
	// second record; it re-anchors the expiry at its own now.
	later := testNow.AddDate(0, 0, 10)
	second, err := NewActivateRecordUseCase(repo, 30, biztime.FixedClock{T: later}, logger.NewNop()).
		Execute(context.Background(), ActivateRecordCommand{RecordSID: record.SID()})
	require.NoError(t, err)

	assert.Equal(t, later.AddDate(0, 0, 30), *second.ExpiresAt())
	assert.Len(t, repo.records, 1)
	assert.Equal(t, 2, repo.updates)
}

func TestActivateRecordReactivatesLapsed(t *testing.T) {
	repo := newFakeRecordRepo()
	record := seedPendingRecord(t, repo)
	require.NoError(t, record.Activate(testNow.AddDate(0, 0, -60), 30))

	uc := NewActivateRecordUseCase(repo, 30, biztime.FixedClock{T: testNow}, logger.NewNop())

	activated, err := uc.Execute(context.Background(), ActivateRecordCommand{RecordSID: record.SID()})
	require.NoError(t, err)

	// The stored expiry had lapsed, so this is a real activation anchored
	// at the current instant.
	assert.Equal(t, testNow.AddDate(0, 0, 30), *activated.ExpiresAt())
	assert.Equal(t, 1, repo.updates)
}

func TestActivateRecordPersistFailure(t *testing.T) {
	repo := newFakeRecordRepo()
	record := seedPendingRecord(t, repo)
	repo.updateErr = assert.AnError

	uc := NewActivateRecordUseCase(repo, 30, biztime.FixedClock{T: testNow}, logger.NewNop())

	_, err := uc.Execute(context.Background(), ActivateRecordCommand{RecordSID: record.SID()})
	assert.ErrorIs(t, err, assert.AnError)
}
