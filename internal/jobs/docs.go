// Package jobs provides scheduled background tasks for the parcel delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot guarantee.
//
// # Available Jobs
//
// 1. AvailabilityReconciliationJob - Runs every minute to free riders whose
// work status says engaged but who no longer have a parcel in transit or
// picked up. Lifecycle writes keep parcel and rider in one transaction, yet
// a crash between consecutive requests can still strand a rider; the sweep
// is the repair path for that.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job logs failures and retries on the next tick; a
// failed sweep never blocks request handling.
package jobs
