// Package jobs provides scheduled background tasks for the shipment tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. StaleShipmentJob - Scans for shipments stuck in a non-terminal status
// past the configured inactivity threshold and reports them
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleShipmentsHandler, staleAfter, schedule, metrics, logger)
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
// The watchdog logs scan failures and increments the error counter; a failed
// run never stops the schedule.
package jobs
