package services

import (
	"time"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/route"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/errs"
)

// AssignmentWorkflow is a domain service that keeps Route, Driver and Schedule
// consistent while an assignment is created, reversed or completed.
//
// The workflow only decides and mutates the aggregates it is handed. Loading
// them (locked, inside one transaction) and persisting the result is the
// caller's job, so every check runs against freshly read state.
//
// Conflict checks run in a fixed order: driver state, then route state, then
// the schedule link.
//
// Example usage:
//
//	workflow := services.NewAssignmentWorkflow()
//	s, err := workflow.Assign(d, r, kernel.NewUUID(), time.Now().UTC())
//	if errs.IsConflict(err) {
//	    // driver busy or route taken
//	}
type AssignmentWorkflow struct{}

func NewAssignmentWorkflow() AssignmentWorkflow {
	return AssignmentWorkflow{}
}

// Assign binds an available driver to an unassigned route and returns the new active schedule.
func (w AssignmentWorkflow) Assign(
	d *driver.Driver,
	r *route.Route,
	scheduleID kernel.UUID,
	now time.Time,
) (*schedule.Schedule, error) {
	if err := w.validate(d, r); err != nil {
		return nil, err
	}

	if !d.IsAvailable() {
		return nil, errs.NewConflictError("driver is not available")
	}
	if err := r.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	s, err := schedule.NewSchedule(scheduleID, d.ID(), r.ID(), now)
	if err != nil {
		return nil, err
	}

	if err = r.Assign(now); err != nil {
		return nil, err
	}
	if err = d.Reserve(now); err != nil {
		return nil, err
	}

	return s, nil
}

// Unassign cancels the active schedule linking d and r and frees both.
// active is the route's current active schedule, nil when there is none.
func (w AssignmentWorkflow) Unassign(
	d *driver.Driver,
	r *route.Route,
	active *schedule.Schedule,
	now time.Time,
) error {
	if err := w.validate(d, r); err != nil {
		return err
	}

	if d.IsAvailable() {
		return errs.NewConflictError("driver is already available")
	}
	if r.Status() == route.Unassigned {
		return errs.NewConflictError("route is already unassigned")
	}
	if active == nil || !active.IsActive() || !active.Links(d.ID(), r.ID()) {
		return errs.NewConflictError("no active schedule links this driver and route")
	}

	if err := active.Cancel(now); err != nil {
		return err
	}
	if err := r.Unassign(now); err != nil {
		return err
	}
	return d.Release(now)
}

// Finish completes an assigned route. The driver released is always the one
// referenced by the active schedule. d may be nil if that driver record was
// removed administratively, in which case there is nobody to release.
func (w AssignmentWorkflow) Finish(
	r *route.Route,
	active *schedule.Schedule,
	d *driver.Driver,
	now time.Time,
) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if err := r.Status().ValidateComplete(); err != nil {
		return err
	}
	if active == nil || !active.IsActive() || !active.RouteID().IsEqual(r.ID()) {
		return errs.NewConflictError("route has no active schedule")
	}
	if d != nil && !d.ID().IsEqual(active.DriverID()) {
		return errs.NewConflictError("driver is not linked to the active schedule")
	}

	if err := active.Complete(now); err != nil {
		return err
	}
	if err := r.Complete(now); err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	return d.Release(now)
}

func (w AssignmentWorkflow) validate(d *driver.Driver, r *route.Route) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return r.Validate()
}
