package commands

import (
	"errors"
	"strings"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a new driver. The driver ID is generated here
// so callers can refer to it before the handler runs.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand("Alex Morgan", "B")
//	if err != nil {
//	    return err // validation error
//	}
//	d, err := handler.Handle(ctx, cmd)
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        string
	licenseType driver.LicenseType

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(name string, licenseType string) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
		command.setLicenseType(licenseType),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) LicenseType() driver.LicenseType {
	return c.licenseType
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDriverCommand) setLicenseType(licenseType string) error {
	lt, err := driver.ParseLicenseType(licenseType)
	if err != nil {
		return err
	}
	c.licenseType = lt
	return nil
}
