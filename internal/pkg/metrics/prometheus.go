// Package metrics holds the Prometheus collectors of the scheduling service.
package metrics

import (
	"time"

	"scheduling/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scheduling"

// Outcome labels for workflow operations.
const (
	OutcomeSuccess    = "success"
	OutcomeNotFound   = "not_found"
	OutcomeConflict   = "conflict"
	OutcomeValidation = "validation"
	OutcomeError      = "error"
)

type Metrics struct {
	WorkflowOperations    *prometheus.CounterVec
	WorkflowDuration      *prometheus.HistogramVec
	ConsistencyViolations *prometheus.GaugeVec
	AuditRuns             *prometheus.CounterVec
}

// NewMetrics registers every collector with reg. Tests pass a fresh
// prometheus.NewRegistry(); the service uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		WorkflowOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_operations_total",
			Help:      "Assign, unassign and finish operations by outcome",
		}, []string{"operation", "outcome"}),
		WorkflowDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workflow_duration_seconds",
			Help:      "Duration of assignment workflow operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		ConsistencyViolations: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "consistency_violations",
			Help:      "Rows breaking the assignment invariants at the last audit",
		}, []string{"kind"}),
		AuditRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consistency_audit_runs_total",
			Help:      "Consistency audit runs by result",
		}, []string{"result"}),
	}
}

// ObserveWorkflow records one workflow operation that started at start.
func (m *Metrics) ObserveWorkflow(operation, outcome string, start time.Time) {
	m.WorkflowOperations.WithLabelValues(operation, outcome).Inc()
	m.WorkflowDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Outcome classifies a workflow result for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errs.IsNotFound(err):
		return OutcomeNotFound
	case errs.IsConflict(err):
		return OutcomeConflict
	case errs.IsValidation(err):
		return OutcomeValidation
	default:
		return OutcomeError
	}
}
