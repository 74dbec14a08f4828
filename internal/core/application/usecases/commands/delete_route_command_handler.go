package commands

import (
	"context"
)

type DeleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewDeleteRouteCommandHandler(uowFactory RouteUoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RouteRepository().Delete(ctx, cmd.RouteID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
