// Package schedulerepo persists the schedule aggregate with GORM.
package schedulerepo

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"

	"github.com/google/uuid"
)

// ScheduleDTO is the row layout of the schedules table. There are no foreign
// keys to drivers or routes: deleting either must not cascade into history.
// The partial unique indexes on active rows are created by postgres.Migrate.
type ScheduleDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	RouteID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ScheduleDTO) TableName() string {
	return "schedules"
}

func fromDomain(aggregate *schedule.Schedule) ScheduleDTO {
	return ScheduleDTO{
		ID:          aggregate.ID().Bytes(),
		DriverID:    aggregate.DriverID().Bytes(),
		RouteID:     aggregate.RouteID().Bytes(),
		Status:      aggregate.Status().String(),
		CompletedAt: aggregate.CompletedAt(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto ScheduleDTO) (*schedule.Schedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if dto.CompletedAt != nil {
		utc := dto.CompletedAt.UTC()
		completedAt = &utc
	}

	return schedule.RestoreSchedule(
		id,
		driverID,
		routeID,
		schedule.Status(dto.Status),
		completedAt,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
