package queries

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverView is the full driver record.
type DriverView struct {
	ID           kernel.UUID
	Name         string
	LicenseType  string
	Availability bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DriverSummary is the driver projection attached to schedules and history.
type DriverSummary struct {
	ID           kernel.UUID
	Name         string
	LicenseType  string
	Availability bool
}

// RouteView is the full route record.
type RouteView struct {
	ID            kernel.UUID
	StartLocation string
	EndLocation   string
	Distance      float64
	EstimatedTime int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RouteSummary is the route projection attached to schedules and history.
type RouteSummary struct {
	ID            kernel.UUID
	StartLocation string
	EndLocation   string
	Distance      float64
	EstimatedTime int
	Status        string
}

// ScheduleView is a schedule joined with its driver and route. Driver or
// Route is nil when the referenced record was deleted; the raw IDs are kept.
type ScheduleView struct {
	ID          kernel.UUID
	DriverID    kernel.UUID
	RouteID     kernel.UUID
	Status      string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Driver      *DriverSummary
	Route       *RouteSummary
}

type driverRow struct {
	ID           uuid.UUID
	Name         string
	LicenseType  string
	Availability bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r driverRow) view() (DriverView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return DriverView{}, err
	}

	return DriverView{
		ID:           id,
		Name:         r.Name,
		LicenseType:  r.LicenseType,
		Availability: r.Availability,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}, nil
}

type routeRow struct {
	ID            uuid.UUID
	StartLocation string
	EndLocation   string
	Distance      float64
	EstimatedTime int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r routeRow) view() (RouteView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return RouteView{}, err
	}

	return RouteView{
		ID:            id,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Distance:      r.Distance,
		EstimatedTime: r.EstimatedTime,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}, nil
}

// scheduleRow is one row of scheduleSelect. Joined columns are nullable
// because schedules keep no foreign keys.
type scheduleRow struct {
	ID          uuid.UUID
	DriverID    uuid.UUID
	RouteID     uuid.UUID
	Status      string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	DriverName         *string
	DriverLicenseType  *string
	DriverAvailability *bool

	RouteStartLocation *string
	RouteEndLocation   *string
	RouteDistance      *float64
	RouteEstimatedTime *int
	RouteStatus        *string
}

const scheduleSelect = `
	SELECT
		s.id,
		s.driver_id,
		s.route_id,
		s.status,
		s.completed_at,
		s.created_at,
		s.updated_at,
		d.name AS driver_name,
		d.license_type AS driver_license_type,
		d.availability AS driver_availability,
		r.start_location AS route_start_location,
		r.end_location AS route_end_location,
		r.distance AS route_distance,
		r.estimated_time AS route_estimated_time,
		r.status AS route_status
	FROM schedules s
	LEFT JOIN drivers d ON d.id = s.driver_id
	LEFT JOIN routes r ON r.id = s.route_id`

func (r scheduleRow) view() (ScheduleView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ScheduleView{}, err
	}
	driverID, err := kernel.UUIDFromBytes(r.DriverID[:])
	if err != nil {
		return ScheduleView{}, err
	}
	routeID, err := kernel.UUIDFromBytes(r.RouteID[:])
	if err != nil {
		return ScheduleView{}, err
	}

	v := ScheduleView{
		ID:        id,
		DriverID:  driverID,
		RouteID:   routeID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}

	if r.CompletedAt != nil {
		completedAt := r.CompletedAt.UTC()
		v.CompletedAt = &completedAt
	}

	if r.DriverName != nil {
		v.Driver = &DriverSummary{
			ID:           driverID,
			Name:         *r.DriverName,
			LicenseType:  deref(r.DriverLicenseType),
			Availability: deref(r.DriverAvailability),
		}
	}

	if r.RouteStatus != nil {
		v.Route = &RouteSummary{
			ID:            routeID,
			StartLocation: deref(r.RouteStartLocation),
			EndLocation:   deref(r.RouteEndLocation),
			Distance:      deref(r.RouteDistance),
			EstimatedTime: deref(r.RouteEstimatedTime),
			Status:        *r.RouteStatus,
		}
	}

	return v, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func views[R interface{ view() (V, error) }, V any](rows []R) ([]V, error) {
	out := make([]V, 0, len(rows))
	for _, row := range rows {
		v, err := row.view()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
