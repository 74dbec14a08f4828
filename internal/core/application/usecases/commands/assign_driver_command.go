package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand binds an available driver to an unassigned route.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(routeID, driverID)
//	s, err := handler.Handle(ctx, cmd)
//	switch {
//	case errs.IsNotFound(err):  // unknown route or driver
//	case errs.IsConflict(err):  // driver busy or route not unassigned
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(routeID, driverID kernel.UUID) (AssignDriverCommand, error) {
	if err := errors.Join(
		requiredID("routeId", routeID),
		requiredID("driverId", driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		routeID:  routeID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func requiredID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
