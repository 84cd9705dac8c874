package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/autoassign/api/model"
)

// orphanGracePeriod protects uploads that landed on disk moments before
// their allocation row is written.
const orphanGracePeriod = 24 * time.Hour

// SweepSessions drops expired sessions from in-process session stores.
// Runs hourly; Redis-backed stores expire keys themselves and skip this job.
func (m *CronManager) SweepSessions() {
	jobName := "sweep_sessions"

	removed := m.sessions.Sweep()
	m.logJobComplete(jobName, fmt.Sprintf("Removed %d expired sessions", removed))
}

// CleanupOrphanedUploads deletes stored submission files that no allocation
// references anymore. Runs daily; files younger than the grace period are
// left alone.
func (m *CronManager) CleanupOrphanedUploads() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	jobName := "cleanup_orphaned_uploads"

	objects, err := m.uploads.List(ctx, "")
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to list uploads: %w", err))
		return
	}

	if len(objects) == 0 {
		m.logJobComplete(jobName, "No uploads to check")
		return
	}

	var paths []string
	err = m.db.Model(&model.AssignmentAllocation{}).
		Where("file_path <> ''").
		Pluck("file_path", &paths).Error
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query allocations: %w", err))
		return
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[p] = true
	}

	cutoff := time.Now().Add(-orphanGracePeriod)
	removed := 0
	failed := 0

	for _, obj := range objects {
		if referenced[obj.Key] || obj.Modified.After(cutoff) {
			continue
		}
		if err := m.uploads.Delete(ctx, obj.Key); err != nil {
			log.Printf("[CRON] Failed to delete orphaned upload %s: %v", obj.Key, err)
			failed++
			continue
		}
		removed++
	}

	m.logJobComplete(jobName, fmt.Sprintf("Removed %d orphaned uploads, %d failures, %d checked", removed, failed, len(objects)))
}
