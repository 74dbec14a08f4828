package ports

import (
	"context"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	Add(ctx context.Context, aggregate *route.Route) error
	Update(ctx context.Context, aggregate *route.Route) error
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetForUpdate reads the route under a row lock. Routes are always locked
	// before schedules and drivers.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*route.Route, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
