// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. StaleBroadcastJob - Runs every minute to find broadcast orders no courier has accepted
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleBroadcastsHandler, olderThan, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stale broadcast job uses the cron expression "0 * * * * *", firing at
// the top of every minute. Detection latency of up to a minute is acceptable
// since staleness itself is measured in minutes.
//
// # Error Handling
//
// - Query failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
