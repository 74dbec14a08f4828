package schedule

import (
	"errors"
	"fmt"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
)

// ErrScheduleIsNotConstructed is returned when a Schedule was not created through NewSchedule or RestoreSchedule.
var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule or RestoreSchedule")

// Schedule is the aggregate root linking a driver to a route.
type Schedule struct {
	id       kernel.UUID
	driverID kernel.UUID
	routeID  kernel.UUID
	status   Status

	// completedAt is set only when status is Completed
	completedAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	events []Event

	isConstructed bool
}

// NewSchedule creates an active schedule and records EventAssigned.
func NewSchedule(id, driverID, routeID kernel.UUID, now time.Time) (*Schedule, error) {
	s := &Schedule{
		status:        Active,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setDriverID(driverID),
		s.setRouteID(routeID),
	); err != nil {
		return nil, err
	}

	s.record(EventAssigned, now)
	return s, nil
}

// RestoreSchedule rebuilds a schedule from persisted state. No events are recorded.
func RestoreSchedule(
	id, driverID, routeID kernel.UUID,
	status Status,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Schedule, error) {
	s := &Schedule{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setDriverID(driverID),
		s.setRouteID(routeID),
		s.setStatus(status, completedAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Schedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

func (s *Schedule) IsEqual(other *Schedule) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Schedule) ID() kernel.UUID {
	return s.id
}

func (s *Schedule) DriverID() kernel.UUID {
	return s.driverID
}

func (s *Schedule) RouteID() kernel.UUID {
	return s.routeID
}

func (s *Schedule) Status() Status {
	return s.status
}

func (s *Schedule) IsActive() bool {
	return s.status == Active
}

// CompletedAt is nil unless the schedule is completed.
func (s *Schedule) CompletedAt() *time.Time {
	return s.completedAt
}

func (s *Schedule) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Schedule) UpdatedAt() time.Time {
	return s.updatedAt
}

// Links reports whether the schedule binds exactly this driver and route.
func (s *Schedule) Links(driverID, routeID kernel.UUID) bool {
	return s.driverID.IsEqual(driverID) && s.routeID.IsEqual(routeID)
}

// Cancel ends an active schedule without completing the route.
func (s *Schedule) Cancel(now time.Time) error {
	status, err := s.status.leave(Cancelled)
	if err != nil {
		return err
	}
	s.status = status
	s.updatedAt = now
	s.record(EventCancelled, now)
	return nil
}

// Complete ends an active schedule and stamps completedAt.
func (s *Schedule) Complete(now time.Time) error {
	status, err := s.status.leave(Completed)
	if err != nil {
		return err
	}
	s.status = status
	s.completedAt = &now
	s.updatedAt = now
	s.record(EventCompleted, now)
	return nil
}

func (s *Schedule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Schedule) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver", err)
	}
	s.driverID = id
	return nil
}

func (s *Schedule) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route", err)
	}
	s.routeID = id
	return nil
}

func (s *Schedule) setStatus(status Status, completedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Completed && completedAt == nil {
		return errs.NewValueIsRequiredErrorWithCause("completedAt", fmt.Errorf("%s schedule has no completion time", status))
	}
	if status != Completed && completedAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("completedAt", fmt.Errorf("%s schedule cannot have a completion time", status))
	}
	s.status = status
	s.completedAt = completedAt
	return nil
}
