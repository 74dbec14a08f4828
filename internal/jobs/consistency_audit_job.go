package jobs

import (
	"context"
	"fmt"
	"time"

	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultAuditSchedule runs the audit every five minutes.
const DefaultAuditSchedule = "0 */5 * * * *"

// Audit run results.
const (
	AuditClean      = "clean"
	AuditViolations = "violations"
	AuditError      = "error"
)

const auditTimeout = 30 * time.Second

type ConsistencyReportHandler interface {
	Handle(ctx context.Context, query queries.GetConsistencyReportQuery) (queries.ConsistencyReport, error)
}

// ConsistencyAuditJob periodically checks that driver availability, route
// status and active schedules agree.
type ConsistencyAuditJob struct {
	handler  ConsistencyReportHandler
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewConsistencyAuditJob(
	handler ConsistencyReportHandler,
	m *metrics.Metrics,
	schedule string,
	logger *zap.Logger,
) *ConsistencyAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &ConsistencyAuditJob{
		handler:  handler,
		metrics:  m,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With(zap.String("component", "consistency_audit_job")),
	}
}

// Start registers the audit under its cron spec and starts the scheduler.
func (j *ConsistencyAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		// Run already logged and counted the failure.
		_ = j.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid audit schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("consistency audit job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running audit to finish.
func (j *ConsistencyAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("consistency audit job stopped")
}

// Run performs one audit.
func (j *ConsistencyAuditJob) Run(ctx context.Context) error {
	report, err := j.handler.Handle(ctx, queries.NewGetConsistencyReportQuery())
	if err != nil {
		j.metrics.AuditRuns.WithLabelValues(AuditError).Inc()
		j.logger.Error("consistency audit failed", zap.Error(err))
		return err
	}

	for kind, count := range report {
		j.metrics.ConsistencyViolations.WithLabelValues(kind).Set(float64(count))
		if count > 0 {
			j.logger.Warn("consistency violation detected",
				zap.String("kind", kind),
				zap.Int64("count", count),
			)
		}
	}

	if report.Total() > 0 {
		j.metrics.AuditRuns.WithLabelValues(AuditViolations).Inc()
		return nil
	}

	j.metrics.AuditRuns.WithLabelValues(AuditClean).Inc()
	j.logger.Debug("consistency audit clean")
	return nil
}
