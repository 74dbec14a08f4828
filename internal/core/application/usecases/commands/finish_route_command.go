package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrFinishRouteCommandIsNotConstructed = errors.New(
	"FinishRouteCommand must be created via NewFinishRouteCommand constructor",
)

// FinishRouteCommand completes an assigned route. The driver is not part of
// the command: it is always the one referenced by the route's active schedule.
type FinishRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewFinishRouteCommand(routeID kernel.UUID) (FinishRouteCommand, error) {
	if err := requiredID("routeId", routeID); err != nil {
		return FinishRouteCommand{}, err
	}

	return FinishRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c FinishRouteCommand) Validate() error {
	return c.guard.Validate(ErrFinishRouteCommandIsNotConstructed)
}

func (c FinishRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}
