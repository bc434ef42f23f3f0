// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order and escrow service.
//
// # Available Jobs
//
// 1. EscrowReleaseJob - Runs every minute to release escrowed funds for
// delivered orders whose buyers never confirmed receipt within the
// protection window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseDueEscrowsHandler, logger)
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
// The escrow release job uses the cron expression "0 * * * * *" which means
// it runs at the top of every minute. The protection window is measured in
// days, so a per-minute sweep keeps releases timely without hammering the
// database.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick; the sweep runs in a
// single transaction, so a partial failure releases nothing.
package jobs
