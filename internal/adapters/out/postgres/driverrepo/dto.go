// Package driverrepo persists the driver aggregate with GORM.
package driverrepo

import (
	"time"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the row layout of the drivers table. Timestamps are owned by
// the domain, so GORM's automatic tracking is switched off.
type DriverDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(50);not null;index"`
	LicenseType  string    `gorm:"type:varchar(1);not null"`
	Availability bool      `gorm:"not null;index"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		LicenseType:  aggregate.LicenseType().String(),
		Availability: aggregate.IsAvailable(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		driver.LicenseType(dto.LicenseType),
		dto.Availability,
		dto.IsActive,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
