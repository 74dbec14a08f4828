package commands

import (
	"context"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/domain/services"
)

// AssignDriverCommandHandler runs Assign in one transaction: the route and the
// driver are locked (in that order), the workflow checks them, and the new
// schedule plus both changed aggregates are written before commit.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	workflow   services.AssignmentWorkflow
}

func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewAssignmentWorkflow(),
	}
}

// Handle returns the created active schedule.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*schedule.Schedule, error) {
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
	driverRepo := uow.DriverRepository()
	scheduleRepo := uow.ScheduleRepository()

	r, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	d, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	s, err := h.workflow.Assign(d, r, kernel.NewUUID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = scheduleRepo.Add(ctx, s); err != nil {
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

	return s, nil
}
