package schedule

import (
	"fmt"

	"scheduling/internal/pkg/errs"
)

// Status is the lifecycle state of a schedule.
//
//	Active ──┬──> Completed
//	         └──> Cancelled
type Status string

const (
	Active    Status = "active"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Active, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid schedule status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

func (s Status) leave(next Status) (Status, error) {
	if s != Active {
		return "", errs.NewConflictError(fmt.Sprintf("schedule is already %s", s))
	}
	return next, nil
}
