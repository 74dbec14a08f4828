package commands

import (
	"context"
	"strings"
	"time"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/pkg/errs"
)

// UpdateDriverCommandHandler merges a partial update into a stored driver.
// The row is locked for the duration so a concurrent assignment cannot have
// its availability change overwritten.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if name := cmd.Name(); name != nil && strings.TrimSpace(*name) != d.Name() {
		if err = d.Rename(*name, now); err != nil {
			return nil, err
		}

		exists, existsErr := driverRepo.ExistsByName(ctx, d.Name())
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, errs.NewConflictError("driver with this name already exists")
		}
	}

	if lt := cmd.LicenseType(); lt != nil {
		if err = d.ChangeLicenseType(*lt, now); err != nil {
			return nil, err
		}
	}

	if active := cmd.IsActive(); active != nil {
		d.SetActive(*active, now)
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
