package commands

import (
	"context"
	"time"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/pkg/errs"
)

// CreateDriverCommandHandler creates and persists new drivers.
// Driver names are unique, checked before insert.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored driver. A taken name is reported as errs.ConflictError.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.LicenseType(), time.Now().UTC())
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

	driverRepo := uow.DriverRepository()

	exists, err := driverRepo.ExistsByName(ctx, d.Name())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError("driver with this name already exists")
	}

	if err = driverRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
