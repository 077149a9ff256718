// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the warehouse floor.
//
// # Available Jobs
//
// 1. ShortageDigestJob - Summarizes unresolved stock exceptions on a schedule
// and hands the rollup to the configured notification sender.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(shortageSummaryHandler, sender, "0 7 * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The digest job is informational. Query or delivery failures are logged and
// the next scheduled run retries from scratch; nothing is queued or replayed.
package jobs
