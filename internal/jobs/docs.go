// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the beer order service.
//
// # Available Jobs
//
// 1. TastingRoomJob - Runs every two seconds to place a small synthetic
// order, exercising the full fulfillment pipeline end to end
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(submitOrderHandler, tastingRoomCustomerID, logger)
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
// - Failed order submissions are logged and the next tick tries again
// - Failed job starts will stop any already running jobs
package jobs
