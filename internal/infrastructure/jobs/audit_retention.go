package jobs

import (
	"context"
	"log"
	"time"
)

// auditRetentionStore is the slice of the audit repository the job needs.
type auditRetentionStore interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditRetentionJob prunes audit entries older than the retention window
type AuditRetentionJob struct {
	repo      auditRetentionStore
	retention time.Duration
	interval  time.Duration
	stop      chan struct{}
}

func NewAuditRetentionJob(repo auditRetentionStore, retention time.Duration) *AuditRetentionJob {
	return &AuditRetentionJob{
		repo:      repo,
		retention: retention,
		interval:  1 * time.Hour, // Prune hourly
		stop:      make(chan struct{}),
	}
}

func (j *AuditRetentionJob) Start(ctx context.Context) {
	log.Println("🕐 Starting audit retention job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Audit retention job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Audit retention job stopped")
			return
		case <-ticker.C:
			j.pruneExpiredEntries(ctx)
		}
	}
}

func (j *AuditRetentionJob) Stop() {
	close(j.stop)
}

func (j *AuditRetentionJob) pruneExpiredEntries(ctx context.Context) {
	cutoff := time.Now().Add(-j.retention)

	deleted, err := j.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Error pruning audit entries: %v", err)
		return
	}

	if deleted == 0 {
		return
	}

	log.Printf("✅ Pruned %d audit entries older than %s", deleted, cutoff.Format(time.RFC3339))
}
