package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/core/ports"
)

// JobManager coordinates the application's scheduled jobs behind a single
// start/stop surface.
type JobManager struct {
	rateAuditJob *RateAuditJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(rates ports.RateRepository, auditSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		rateAuditJob: NewRateAuditJob(rates, auditSchedule, logger),
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.rateAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start rate audit job: %w", err)
	}

	return nil
}

// StopAll stops every scheduled job gracefully.
func (jm *JobManager) StopAll() {
	jm.rateAuditJob.Stop()
}
