package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand registers a new unassigned route. Range checks on the
// attributes are left to route.NewRoute so both paths report the same errors.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID       kernel.UUID
	startLocation string
	endLocation   string
	distance      float64
	estimatedTime int

	guard guard.ConstructorGuard
}

func NewCreateRouteCommand(
	startLocation string,
	endLocation string,
	distance float64,
	estimatedTime int,
) (CreateRouteCommand, error) {
	routeID := kernel.NewUUID()
	if err := routeID.Validate(); err != nil {
		return CreateRouteCommand{}, err
	}

	return CreateRouteCommand{
		routeID:       routeID,
		startLocation: startLocation,
		endLocation:   endLocation,
		distance:      distance,
		estimatedTime: estimatedTime,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c CreateRouteCommand) StartLocation() string {
	return c.startLocation
}

func (c CreateRouteCommand) EndLocation() string {
	return c.endLocation
}

func (c CreateRouteCommand) Distance() float64 {
	return c.distance
}

func (c CreateRouteCommand) EstimatedTime() int {
	return c.estimatedTime
}
