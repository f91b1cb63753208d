// Package jobs provides scheduled background tasks for the service platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path does not cover.
//
// # Available Jobs
//
// 1. RiderAssignmentJob - Runs every second to assign available riders to confirmed orders
// 2. StaleOrderExpiryJob - Runs every minute to cancel pending orders that were never confirmed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignDeliveryHandler, expireStaleOrdersHandler, maxPendingAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no orders, no riders)
// - Expiry job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
