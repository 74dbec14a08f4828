package postgres

import (
	"context"
	"fmt"

	"scheduling/internal/adapters/out/postgres/driverrepo"
	"scheduling/internal/adapters/out/postgres/pgerrs"
	"scheduling/internal/adapters/out/postgres/routerepo"
	"scheduling/internal/adapters/out/postgres/schedulerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the drivers, routes and schedules tables and the
// partial unique indexes that allow at most one active schedule per route and
// per driver.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&routerepo.RouteDTO{},
		&schedulerepo.ScheduleDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	indexes := []struct {
		name   string
		column string
	}{
		{pgerrs.ActiveRouteIndex, "route_id"},
		{pgerrs.ActiveDriverIndex, "driver_id"},
	}

	for _, idx := range indexes {
		stmt := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON schedules (%s) WHERE status = 'active'",
			idx.name, idx.column,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}

	return nil
}
