// Package routerepo persists the route aggregate with GORM.
package routerepo

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/route"

	"github.com/google/uuid"
)

type RouteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartLocation string    `gorm:"type:varchar(100);not null"`
	EndLocation   string    `gorm:"type:varchar(100);not null"`
	Distance      float64   `gorm:"type:double precision;not null"`
	EstimatedTime int       `gorm:"not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt     time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:            aggregate.ID().Bytes(),
		StartLocation: aggregate.StartLocation(),
		EndLocation:   aggregate.EndLocation(),
		Distance:      aggregate.Distance(),
		EstimatedTime: aggregate.EstimatedTime(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(
		id,
		dto.StartLocation,
		dto.EndLocation,
		dto.Distance,
		dto.EstimatedTime,
		route.Status(dto.Status),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
