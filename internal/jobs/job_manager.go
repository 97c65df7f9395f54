package jobs

import (
	"fmt"
	"time"

	"shiptracker/internal/core/application/usecases/queries"
	"shiptracker/pkg/logger"
	"shiptracker/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleShipmentJob *StaleShipmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	staleShipmentsHandler queries.GetStaleShipmentsQueryHandler,
	staleAfter time.Duration,
	schedule string,
	m *metrics.Metrics,
	log logger.Logger,
) *JobManager {
	return &JobManager{
		staleShipmentJob: NewStaleShipmentJob(staleShipmentsHandler, staleAfter, schedule, m, log),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleShipmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale shipment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleShipmentJob.Stop()
}
