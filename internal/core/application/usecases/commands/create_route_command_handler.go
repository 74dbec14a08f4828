package commands

import (
	"context"
	"time"

	"scheduling/internal/core/domain/model/route"
)

type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the attributes, stores the route as unassigned and returns it.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := route.NewRoute(
		cmd.RouteID(),
		cmd.StartLocation(),
		cmd.EndLocation(),
		cmd.Distance(),
		cmd.EstimatedTime(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
