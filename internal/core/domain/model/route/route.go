package route

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
)

const (
	LocationMinLength = 2
	LocationMaxLength = 100

	MaxDistance = 10000.0

	MinEstimatedTime = 1
	MaxEstimatedTime = 1440
)

// ErrRouteIsNotConstructed is returned when a Route was not created through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// Route represents a trip between two named locations.
//
// Route follows these invariants:
//   - Locations are 2 to 100 characters after trimming
//   - Distance is in (0, 10000]
//   - Estimated time is whole minutes in [1, 1440]
//   - Status changes only through Assign, Unassign and Complete
type Route struct {
	id            kernel.UUID
	startLocation string
	endLocation   string
	distance      float64

	// estimatedTime is in minutes
	estimatedTime int

	status Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRoute creates an unassigned route.
func NewRoute(
	id kernel.UUID,
	startLocation string,
	endLocation string,
	distance float64,
	estimatedTime int,
	now time.Time,
) (*Route, error) {
	r := &Route{
		status:        Unassigned,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setStartLocation(startLocation),
		r.setEndLocation(endLocation),
		r.setDistance(distance),
		r.setEstimatedTime(estimatedTime),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute rebuilds a route from persisted state.
func RestoreRoute(
	id kernel.UUID,
	startLocation string,
	endLocation string,
	distance float64,
	estimatedTime int,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Route, error) {
	r := &Route{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setStartLocation(startLocation),
		r.setEndLocation(endLocation),
		r.setDistance(distance),
		r.setEstimatedTime(estimatedTime),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = status

	return r, nil
}

func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Route) ID() kernel.UUID {
	return r.id
}

func (r *Route) StartLocation() string {
	return r.startLocation
}

func (r *Route) EndLocation() string {
	return r.endLocation
}

func (r *Route) Distance() float64 {
	return r.distance
}

// EstimatedTime returns the expected duration in minutes.
func (r *Route) EstimatedTime() int {
	return r.estimatedTime
}

func (r *Route) Status() Status {
	return r.status
}

func (r *Route) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Route) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Route) ChangeStartLocation(location string, now time.Time) error {
	if err := r.setStartLocation(location); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

func (r *Route) ChangeEndLocation(location string, now time.Time) error {
	if err := r.setEndLocation(location); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

func (r *Route) ChangeDistance(distance float64, now time.Time) error {
	if err := r.setDistance(distance); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

func (r *Route) ChangeEstimatedTime(minutes int, now time.Time) error {
	if err := r.setEstimatedTime(minutes); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

// Assign marks the route as taken by a driver.
func (r *Route) Assign(now time.Time) error {
	return r.transition(r.status.Assign, now)
}

// Unassign returns an assigned route to the unassigned pool.
func (r *Route) Unassign(now time.Time) error {
	return r.transition(r.status.Unassign, now)
}

// Complete marks an assigned route as finished.
func (r *Route) Complete(now time.Time) error {
	return r.transition(r.status.Complete, now)
}

func (r *Route) transition(next func() (Status, error), now time.Time) error {
	status, err := next()
	if err != nil {
		return err
	}
	r.status = status
	r.updatedAt = now
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setStartLocation(location string) error {
	location, err := normalizeLocation("startLocation", location)
	if err != nil {
		return err
	}
	r.startLocation = location
	return nil
}

func (r *Route) setEndLocation(location string) error {
	location, err := normalizeLocation("endLocation", location)
	if err != nil {
		return err
	}
	r.endLocation = location
	return nil
}

func (r *Route) setDistance(distance float64) error {
	if math.IsNaN(distance) || distance <= 0 || distance > MaxDistance {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"distance", distance, 0, MaxDistance,
			fmt.Errorf("%v is not greater than 0 or exceeds %v", distance, MaxDistance),
		)
	}
	r.distance = distance
	return nil
}

func (r *Route) setEstimatedTime(minutes int) error {
	if minutes < MinEstimatedTime || minutes > MaxEstimatedTime {
		return errs.NewValueIsOutOfRangeError("estimatedTime", minutes, MinEstimatedTime, MaxEstimatedTime)
	}
	r.estimatedTime = minutes
	return nil
}

func normalizeLocation(param, location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(location); n < LocationMinLength || n > LocationMaxLength {
		return "", errs.NewValueIsOutOfRangeError(param+" length", n, LocationMinLength, LocationMaxLength)
	}
	return location, nil
}
