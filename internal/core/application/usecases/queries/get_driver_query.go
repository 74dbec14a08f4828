package queries

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New("GetDriverQuery must be created via NewGetDriverQuery constructor")

// GetDriverQuery looks up one driver by ID.
type GetDriverQuery struct {
	driverID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}
	return GetDriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}
