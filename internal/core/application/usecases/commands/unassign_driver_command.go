package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrUnassignDriverCommandIsNotConstructed = errors.New(
	"UnassignDriverCommand must be created via NewUnassignDriverCommand constructor",
)

// UnassignDriverCommand reverses an assignment: the active schedule linking the
// driver and the route is cancelled and both are freed.
type UnassignDriverCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUnassignDriverCommand(routeID, driverID kernel.UUID) (UnassignDriverCommand, error) {
	if err := errors.Join(
		requiredID("routeId", routeID),
		requiredID("driverId", driverID),
	); err != nil {
		return UnassignDriverCommand{}, err
	}

	return UnassignDriverCommand{
		routeID:  routeID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UnassignDriverCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDriverCommandIsNotConstructed)
}

func (c UnassignDriverCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c UnassignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
