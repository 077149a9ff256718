package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shortageDigestJob *ShortageDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	shortageSummaryHandler queries.GetShortageSummaryQueryHandler,
	sender ports.NotificationSender,
	digestSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shortageDigestJob: NewShortageDigestJob(shortageSummaryHandler, sender, digestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shortageDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start shortage digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shortageDigestJob.Stop()
}
