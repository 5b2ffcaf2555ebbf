// Package jobs provides scheduled background tasks for the fleet system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for fleet operations.
//
// # Available Jobs
//
// 1. FleetReportJob - Periodically logs a snapshot of the fleet: free
// vehicles, drivers without vehicles, and open transport orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required query handlers
//	jobManager := jobs.NewJobManager(reportJob)
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
// The report job takes its cron expression from configuration, so operators
// decide how often the snapshot lands in the logs.
package jobs
