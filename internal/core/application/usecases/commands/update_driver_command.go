package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand carries a partial update. Nil fields keep their stored
// value. Availability is deliberately absent: only the assignment workflow may change it.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        *string
	licenseType *driver.LicenseType
	isActive    *bool

	guard guard.ConstructorGuard
}

func NewUpdateDriverCommand(
	driverID kernel.UUID,
	name *string,
	licenseType *string,
	isActive *bool,
) (UpdateDriverCommand, error) {
	command := UpdateDriverCommand{
		name:     name,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setLicenseType(licenseType),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	return command, nil
}

func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c UpdateDriverCommand) Name() *string {
	return c.name
}

func (c UpdateDriverCommand) LicenseType() *driver.LicenseType {
	return c.licenseType
}

func (c UpdateDriverCommand) IsActive() *bool {
	return c.isActive
}

func (c *UpdateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *UpdateDriverCommand) setLicenseType(licenseType *string) error {
	if licenseType == nil {
		return nil
	}
	lt, err := driver.ParseLicenseType(*licenseType)
	if err != nil {
		return err
	}
	c.licenseType = &lt
	return nil
}
