package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type auditRetentionStoreStub struct {
	deleted    int64
	err        error
	calls      int
	lastCutoff time.Time
}

func (s *auditRetentionStoreStub) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.calls++
	s.lastCutoff = cutoff
	return s.deleted, s.err
}

func TestPruneExpiredEntries_CutoffHonorsRetention(t *testing.T) {
	store := &auditRetentionStoreStub{deleted: 3}
	job := NewAuditRetentionJob(store, 90*24*time.Hour)

	before := time.Now().Add(-90 * 24 * time.Hour)
	job.pruneExpiredEntries(context.Background())
	after := time.Now().Add(-90 * 24 * time.Hour)

	require.Equal(t, 1, store.calls)
	require.False(t, store.lastCutoff.Before(before))
	require.False(t, store.lastCutoff.After(after))
}

func TestPruneExpiredEntries_StoreError(t *testing.T) {
	store := &auditRetentionStoreStub{err: errors.New("db down")}
	job := NewAuditRetentionJob(store, time.Hour)

	job.pruneExpiredEntries(context.Background())
	require.Equal(t, 1, store.calls)
}

func TestAuditRetentionJob_StopTerminatesLoop(t *testing.T) {
	store := &auditRetentionStoreStub{}
	job := &AuditRetentionJob{
		repo:      store,
		retention: time.Hour,
		interval:  time.Millisecond,
		stop:      make(chan struct{}),
	}

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	job.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
	require.GreaterOrEqual(t, store.calls, 1)
}

func TestAuditRetentionJob_ContextCancelTerminatesLoop(t *testing.T) {
	job := NewAuditRetentionJob(&auditRetentionStoreStub{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on context cancel")
	}
}
