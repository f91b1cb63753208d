package jobs

import (
	"context"
	"errors"
	"log/slog"

	"hatid/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RiderAssignmentJob manages the scheduled assignment of riders to orders.
// Runs every second to match confirmed orders with available riders.
type RiderAssignmentJob struct {
	handler commands.AssignDeliveryCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRiderAssignmentJob creates a new job for assigning riders.
// Uses AssignDeliveryCommandHandler to process one assignment per tick.
func NewRiderAssignmentJob(handler commands.AssignDeliveryCommandHandler, logger *slog.Logger) *RiderAssignmentJob {
	return &RiderAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rider_assignment_job"),
	}
}

// Start begins the rider assignment job to run every second.
func (j *RiderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignDeliveryCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoAvailableRidersFound) {
				j.logger.ErrorContext(ctx, "Rider assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider assignment job started (running every second)")
	return nil
}

// Stop stops the rider assignment job.
func (j *RiderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rider assignment job stopped")
}
