package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"hatid/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	riderAssignmentJob  *RiderAssignmentJob
	staleOrderExpiryJob *StaleOrderExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	expireStaleOrdersHandler commands.ExpireStaleOrdersCommandHandler,
	maxPendingAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		riderAssignmentJob:  NewRiderAssignmentJob(assignDeliveryHandler, logger),
		staleOrderExpiryJob: NewStaleOrderExpiryJob(expireStaleOrdersHandler, maxPendingAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.riderAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider assignment job: %w", err)
	}

	if err := jm.staleOrderExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.riderAssignmentJob.Stop()
		return fmt.Errorf("failed to start stale order expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderExpiryJob.Stop()
	jm.riderAssignmentJob.Stop()
}
