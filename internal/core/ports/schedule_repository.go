package ports

import (
	"context"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
)

// ScheduleRepository defines the persistence contract for schedule aggregates.
//
// Schedules are never deleted. Finders that look up the active schedule lock
// the row they return and report errs.ObjectNotFoundError when there is none.
type ScheduleRepository interface {
	Add(ctx context.Context, aggregate *schedule.Schedule) error
	Update(ctx context.Context, aggregate *schedule.Schedule) error
	Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error)

	// FindActiveByRoute returns the route's single active schedule.
	FindActiveByRoute(ctx context.Context, routeID kernel.UUID) (*schedule.Schedule, error)

	// FindActiveByDriverAndRoute returns the active schedule linking both.
	FindActiveByDriverAndRoute(ctx context.Context, driverID, routeID kernel.UUID) (*schedule.Schedule, error)
}
