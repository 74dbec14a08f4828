package commands

import (
	"context"
	"time"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/pkg/errs"
)

// FinishRouteCommandHandler runs Finish in one transaction. The route is
// locked first, then its active schedule, then the schedule's driver.
type FinishRouteCommandHandler struct {
	uowFactory UoWFactory
	workflow   services.AssignmentWorkflow
}

func NewFinishRouteCommandHandler(uowFactory UoWFactory) FinishRouteCommandHandler {
	return FinishRouteCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewAssignmentWorkflow(),
	}
}

// Handle returns the completed schedule.
func (h FinishRouteCommandHandler) Handle(ctx context.Context, cmd FinishRouteCommand) (*schedule.Schedule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	scheduleRepo := uow.ScheduleRepository()
	driverRepo := uow.DriverRepository()

	r, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	active, err := scheduleRepo.FindActiveByRoute(ctx, cmd.RouteID())
	if err != nil && !errs.IsNotFound(err) {
		return nil, err
	}

	// A driver deleted administratively leaves nobody to release.
	var d *driver.Driver
	if active != nil {
		d, err = driverRepo.GetForUpdate(ctx, active.DriverID())
		if err != nil && !errs.IsNotFound(err) {
			return nil, err
		}
	}

	if err = h.workflow.Finish(r, active, d, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = scheduleRepo.Update(ctx, active); err != nil {
		return nil, err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if d != nil {
		if err = driverRepo.Update(ctx, d); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return active, nil
}
