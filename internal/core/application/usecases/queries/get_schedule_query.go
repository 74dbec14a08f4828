package queries

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrGetScheduleQueryIsNotConstructed = errors.New("GetScheduleQuery must be created via NewGetScheduleQuery constructor")

type GetScheduleQuery struct {
	scheduleID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetScheduleQuery(scheduleID kernel.UUID) (GetScheduleQuery, error) {
	if err := scheduleID.Validate(); err != nil {
		return GetScheduleQuery{}, err
	}
	return GetScheduleQuery{scheduleID: scheduleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetScheduleQuery) ScheduleID() kernel.UUID {
	return q.scheduleID
}

func (q GetScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleQueryIsNotConstructed)
}
