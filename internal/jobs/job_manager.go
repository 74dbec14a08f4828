package jobs

import (
	"fmt"

	"scheduling/internal/pkg/metrics"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	consistencyAuditJob *ConsistencyAuditJob
}

func NewJobManager(
	reportHandler ConsistencyReportHandler,
	m *metrics.Metrics,
	auditSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		consistencyAuditJob: NewConsistencyAuditJob(reportHandler, m, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.consistencyAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start consistency audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	jm.consistencyAuditJob.Stop()
}
