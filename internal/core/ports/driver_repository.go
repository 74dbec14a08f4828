// Package ports defines the contracts between the scheduling core and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	// Returns errs.ObjectNotFoundError if the driver does not exist.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver without locking it.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver and holds a row lock on it until the
	// surrounding transaction ends. Only meaningful inside a unit of work.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Delete removes the driver record. Schedules referencing it are kept.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsByName reports whether a driver with exactly this name is stored.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
