package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrUpdateRouteCommandIsNotConstructed = errors.New(
	"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
)

// UpdateRouteCommand carries a partial update of route attributes. Nil fields
// keep their stored value; status cannot be set through it.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID       kernel.UUID
	startLocation *string
	endLocation   *string
	distance      *float64
	estimatedTime *int

	guard guard.ConstructorGuard
}

func NewUpdateRouteCommand(
	routeID kernel.UUID,
	startLocation *string,
	endLocation *string,
	distance *float64,
	estimatedTime *int,
) (UpdateRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return UpdateRouteCommand{}, err
	}

	return UpdateRouteCommand{
		routeID:       routeID,
		startLocation: startLocation,
		endLocation:   endLocation,
		distance:      distance,
		estimatedTime: estimatedTime,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

func (c UpdateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c UpdateRouteCommand) StartLocation() *string {
	return c.startLocation
}

func (c UpdateRouteCommand) EndLocation() *string {
	return c.endLocation
}

func (c UpdateRouteCommand) Distance() *float64 {
	return c.distance
}

func (c UpdateRouteCommand) EstimatedTime() *int {
	return c.estimatedTime
}
