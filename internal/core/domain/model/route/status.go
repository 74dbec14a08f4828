package route

import (
	"fmt"

	"scheduling/internal/pkg/errs"
)

// Status is the lifecycle state of a route.
type Status string

const (
	Unassigned Status = "unassigned"
	Assigned   Status = "assigned"
	Completed  Status = "completed"
)

// ParseStatus converts a persisted or query string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Unassigned, Assigned, Completed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid route status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// ValidateAssign reports whether a driver can be assigned to a route in this status.
func (s Status) ValidateAssign() error {
	switch s {
	case Unassigned:
		return nil
	case Assigned:
		return errs.NewConflictError("route is already assigned")
	case Completed:
		return errs.NewConflictError("route is already completed")
	default:
		return s.Validate()
	}
}

// ValidateUnassign reports whether the route can be released. A completed
// route is rejected here as well since it no longer has an active schedule.
func (s Status) ValidateUnassign() error {
	switch s {
	case Assigned:
		return nil
	case Unassigned:
		return errs.NewConflictError("route is already unassigned")
	case Completed:
		return errs.NewConflictError("route is already completed")
	default:
		return s.Validate()
	}
}

func (s Status) ValidateComplete() error {
	switch s {
	case Assigned:
		return nil
	case Unassigned:
		return errs.NewConflictError("route is not assigned")
	case Completed:
		return errs.NewConflictError("route is already completed")
	default:
		return s.Validate()
	}
}

func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return "", err
	}
	return Assigned, nil
}

func (s Status) Unassign() (Status, error) {
	if err := s.ValidateUnassign(); err != nil {
		return "", err
	}
	return Unassigned, nil
}

func (s Status) Complete() (Status, error) {
	if err := s.ValidateComplete(); err != nil {
		return "", err
	}
	return Completed, nil
}
