package queries

import (
	"errors"

	"scheduling/internal/pkg/guard"
)

var ErrGetConsistencyReportQueryIsNotConstructed = errors.New(
	"GetConsistencyReportQuery must be created via NewGetConsistencyReportQuery constructor",
)

// Violation kinds counted by the consistency report.
const (
	UnavailableDriverWithoutSchedule = "unavailable_driver_without_schedule"
	AvailableDriverWithSchedule      = "available_driver_with_schedule"
	AssignedRouteWithoutSchedule     = "assigned_route_without_schedule"
	RouteWithManyActiveSchedules     = "route_with_many_active_schedules"
)

// GetConsistencyReportQuery counts rows that break the assignment invariants.
type GetConsistencyReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetConsistencyReportQuery() GetConsistencyReportQuery {
	return GetConsistencyReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetConsistencyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetConsistencyReportQueryIsNotConstructed)
}

// ConsistencyReport maps each violation kind to the number of offending rows.
// Every kind is present, zero when consistent.
type ConsistencyReport map[string]int64

// Total is the sum over all kinds.
func (r ConsistencyReport) Total() int64 {
	var total int64
	for _, n := range r {
		total += n
	}
	return total
}
