// Package commands contains the write operations of the scheduling service.
// Every command follows the same shape: validate the command, open a unit of
// work, load (and lock) the aggregates, apply the domain rules, persist, commit.
package commands

import (
	"context"

	"scheduling/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// UoW spans drivers, routes and schedules. The assignment workflow
	// commands use it to change all three atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   r, err := uow.RouteRepository().GetForUpdate(ctx, routeID)
	//   d, err := uow.DriverRepository().GetForUpdate(ctx, driverID)
	//   // ... apply services.AssignmentWorkflow
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DriverRepoFactory
		RouteRepoFactory
		ScheduleRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
