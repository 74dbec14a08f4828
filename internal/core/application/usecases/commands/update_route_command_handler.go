package commands

import (
	"context"
	"errors"
	"time"

	"scheduling/internal/core/domain/model/route"
)

// UpdateRouteCommandHandler merges a partial update into a stored route under
// a row lock, so a concurrent status transition is never overwritten.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewUpdateRouteCommandHandler(uowFactory RouteUoWFactory) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) (*route.Route, error) {
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

	r, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	if err = applyRouteChanges(r, cmd, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// applyRouteChanges reports every invalid field at once.
func applyRouteChanges(r *route.Route, cmd UpdateRouteCommand, now time.Time) error {
	var errList []error

	if v := cmd.StartLocation(); v != nil {
		errList = append(errList, r.ChangeStartLocation(*v, now))
	}
	if v := cmd.EndLocation(); v != nil {
		errList = append(errList, r.ChangeEndLocation(*v, now))
	}
	if v := cmd.Distance(); v != nil {
		errList = append(errList, r.ChangeDistance(*v, now))
	}
	if v := cmd.EstimatedTime(); v != nil {
		errList = append(errList, r.ChangeEstimatedTime(*v, now))
	}

	return errors.Join(errList...)
}
