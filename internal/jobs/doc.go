// Package jobs provides scheduled background tasks for the freight
// service, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AnnouncementActivationJob - Runs every minute to flip pending
// announcements whose start date has arrived into the active state.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(activateDueHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed activation sweep is logged and retried on the next tick;
// announcements stay pending until a sweep succeeds, so a transient
// database failure delays activation rather than losing it.
package jobs
