package cron

import (
	"log"
	"time"

	"github.com/autoassign/api/model"
	"github.com/autoassign/api/services/storage"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Sweeper is implemented by session stores that need periodic expiry
// maintenance. Redis-backed stores expire on their own and pass nil here.
type Sweeper interface {
	Sweep() int
}

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron     *cron.Cron
	db       *gorm.DB
	sessions Sweeper
	uploads  storage.Storage
}

// NewCronManager creates a new cron manager. sessions may be nil when the
// session backing expires entries itself.
func NewCronManager(db *gorm.DB, sessions Sweeper, uploads storage.Storage) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:     c,
		db:       db,
		sessions: sessions,
		uploads:  uploads,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// 1. Every hour: Sweep expired sessions
	if m.sessions != nil {
		_, err := m.cron.AddFunc("0 0 * * * *", func() {
			m.logJobStart("sweep_sessions")
			m.SweepSessions()
		})
		if err != nil {
			return err
		}
	}

	// 2. Daily at 3 AM: Cleanup orphaned uploads
	_, err := m.cron.AddFunc("0 0 3 * * *", func() {
		m.logJobStart("cleanup_orphaned_uploads")
		m.CleanupOrphanedUploads()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))

	cronLog := model.CronJobLog{
		JobName:   jobName,
		Status:    "running",
		StartedAt: time.Now(),
	}
	m.db.Create(&cronLog)
}

// logJobComplete logs successful completion of a cron job
func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)

	m.db.Model(&model.CronJobLog{}).
		Where("job_name = ? AND status = ?", jobName, "running").
		Order("started_at DESC").
		Limit(1).
		Updates(map[string]interface{}{
			"status":       "completed",
			"completed_at": time.Now(),
			"message":      message,
		})
}

// logJobError logs a cron job error
func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)

	m.db.Model(&model.CronJobLog{}).
		Where("job_name = ? AND status = ?", jobName, "running").
		Order("started_at DESC").
		Limit(1).
		Updates(map[string]interface{}{
			"status":       "failed",
			"completed_at": time.Now(),
			"error_msg":    err.Error(),
		})
}
