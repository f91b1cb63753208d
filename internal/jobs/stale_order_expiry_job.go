package jobs

import (
	"context"
	"log/slog"
	"time"

	"hatid/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderExpiryJob manages the scheduled expiry of unconfirmed orders.
// Runs every minute to cancel pending orders older than the configured age.
type StaleOrderExpiryJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderExpiryJob creates a new job for expiring stale orders.
func NewStaleOrderExpiryJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderExpiryJob {
	return &StaleOrderExpiryJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_expiry_job"),
	}
}

// Start begins the expiry job to run every minute.
func (j *StaleOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order expiry job started (running every minute)",
		"max_pending_age", j.maxAge)
	return nil
}

// Stop stops the stale order expiry job.
func (j *StaleOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order expiry job stopped")
}
