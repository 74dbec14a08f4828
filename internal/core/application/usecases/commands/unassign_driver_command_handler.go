package commands

import (
	"context"
	"time"

	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/pkg/errs"
)

// UnassignDriverCommandHandler runs Unassign in one transaction. Lock order is
// route, schedule, driver.
type UnassignDriverCommandHandler struct {
	uowFactory UoWFactory
	workflow   services.AssignmentWorkflow
}

func NewUnassignDriverCommandHandler(uowFactory UoWFactory) UnassignDriverCommandHandler {
	return UnassignDriverCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewAssignmentWorkflow(),
	}
}

// Handle returns the cancelled schedule.
func (h UnassignDriverCommandHandler) Handle(
	ctx context.Context,
	cmd UnassignDriverCommand,
) (*schedule.Schedule, error) {
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

	active, err := scheduleRepo.FindActiveByDriverAndRoute(ctx, cmd.DriverID(), cmd.RouteID())
	if err != nil && !errs.IsNotFound(err) {
		return nil, err
	}

	d, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = h.workflow.Unassign(d, r, active, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = scheduleRepo.Update(ctx, active); err != nil {
		return nil, err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return active, nil
}
