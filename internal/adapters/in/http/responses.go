package http

import (
	"time"

	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/route"
	"scheduling/internal/core/domain/model/schedule"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// listEnvelope carries the pagination counters next to the data. Exactly one
// of Total and TotalDocs is set, matching the listing.
type listEnvelope struct {
	Status     string `json:"status"`
	Results    int    `json:"results"`
	Total      *int64 `json:"total,omitempty"`
	TotalDocs  *int64 `json:"totalDocs,omitempty"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Data       any    `json:"data"`
}

func success(data any) envelope {
	return envelope{Status: statusSuccess, Data: data}
}

func list[T any](page queries.Page[T], data any) listEnvelope {
	total := page.Total
	return listEnvelope{
		Status:     statusSuccess,
		Results:    len(page.Items),
		Total:      &total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Data:       data,
	}
}

// withTotalDocs reports the count under "totalDocs" instead of "total".
func (l listEnvelope) withTotalDocs() listEnvelope {
	l.TotalDocs, l.Total = l.Total, nil
	return l
}

type driverResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LicenseType  string    `json:"licenseType"`
	Availability bool      `json:"availability"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type driverSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LicenseType  string `json:"licenseType"`
	Availability bool   `json:"availability"`
}

type routeResponse struct {
	ID            string    `json:"id"`
	StartLocation string    `json:"startLocation"`
	EndLocation   string    `json:"endLocation"`
	Distance      float64   `json:"distance"`
	EstimatedTime int       `json:"estimatedTime"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type routeSummaryResponse struct {
	ID            string  `json:"id"`
	StartLocation string  `json:"startLocation"`
	EndLocation   string  `json:"endLocation"`
	Distance      float64 `json:"distance"`
	EstimatedTime int     `json:"estimatedTime"`
	Status        string  `json:"status"`
}

type scheduleResponse struct {
	ID          string                 `json:"id"`
	DriverID    string                 `json:"driverId"`
	RouteID     string                 `json:"routeId"`
	Driver      *driverSummaryResponse `json:"driver,omitempty"`
	Route       *routeSummaryResponse  `json:"route,omitempty"`
	Status      string                 `json:"status"`
	CompletedAt *time.Time             `json:"completedAt"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func fromDriver(d *driver.Driver) driverResponse {
	return driverResponse{
		ID:           d.ID().String(),
		Name:         d.Name(),
		LicenseType:  d.LicenseType().String(),
		Availability: d.IsAvailable(),
		IsActive:     d.IsActive(),
		CreatedAt:    d.CreatedAt(),
		UpdatedAt:    d.UpdatedAt(),
	}
}

func fromDriverView(v queries.DriverView) driverResponse {
	return driverResponse{
		ID:           v.ID.String(),
		Name:         v.Name,
		LicenseType:  v.LicenseType,
		Availability: v.Availability,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func fromDriverSummary(v queries.DriverSummary) driverSummaryResponse {
	return driverSummaryResponse{
		ID:           v.ID.String(),
		Name:         v.Name,
		LicenseType:  v.LicenseType,
		Availability: v.Availability,
	}
}

func fromRoute(r *route.Route) routeResponse {
	return routeResponse{
		ID:            r.ID().String(),
		StartLocation: r.StartLocation(),
		EndLocation:   r.EndLocation(),
		Distance:      r.Distance(),
		EstimatedTime: r.EstimatedTime(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func fromRouteView(v queries.RouteView) routeResponse {
	return routeResponse{
		ID:            v.ID.String(),
		StartLocation: v.StartLocation,
		EndLocation:   v.EndLocation,
		Distance:      v.Distance,
		EstimatedTime: v.EstimatedTime,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func fromSchedule(s *schedule.Schedule) scheduleResponse {
	return scheduleResponse{
		ID:          s.ID().String(),
		DriverID:    s.DriverID().String(),
		RouteID:     s.RouteID().String(),
		Status:      s.Status().String(),
		CompletedAt: s.CompletedAt(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func fromScheduleView(v queries.ScheduleView) scheduleResponse {
	resp := scheduleResponse{
		ID:          v.ID.String(),
		DriverID:    v.DriverID.String(),
		RouteID:     v.RouteID.String(),
		Status:      v.Status,
		CompletedAt: v.CompletedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}

	if v.Driver != nil {
		d := fromDriverSummary(*v.Driver)
		resp.Driver = &d
	}

	if v.Route != nil {
		resp.Route = &routeSummaryResponse{
			ID:            v.Route.ID.String(),
			StartLocation: v.Route.StartLocation,
			EndLocation:   v.Route.EndLocation,
			Distance:      v.Route.Distance,
			EstimatedTime: v.Route.EstimatedTime,
			Status:        v.Route.Status,
		}
	}

	return resp
}

func mapItems[T, R any](items []T, convert func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return out
}
