// Package jobs provides scheduled background tasks for the scheduling service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds).
//
// # Available Jobs
//
// ConsistencyAuditJob counts drivers, routes and schedules that disagree with
// each other and exports the counts as the scheduling_consistency_violations
// gauge. It only reads; repairing data is left to an operator.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reportHandler, m, cfg.AuditSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed audit run is logged and counted with result="error"; the next tick
// runs as usual. Overlapping runs are skipped.
package jobs
