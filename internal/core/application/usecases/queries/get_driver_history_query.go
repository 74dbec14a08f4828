package queries

import (
	"errors"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

var ErrGetDriverHistoryQueryIsNotConstructed = errors.New(
	"GetDriverHistoryQuery must be created via NewGetDriverHistoryQuery constructor",
)

// HistoryFilter narrows a driver's history. Nil fields do not filter.
// From and To bound the schedule creation time and are both inclusive.
type HistoryFilter struct {
	Status *schedule.Status
	From   *time.Time
	To     *time.Time
}

// GetDriverHistoryQuery pages through the schedules of one driver, newest first.
//
// Example:
//
//	completed := schedule.Completed
//	q, err := queries.NewGetDriverHistoryQuery(driverID, p, queries.HistoryFilter{Status: &completed})
type GetDriverHistoryQuery struct {
	driverID   kernel.UUID
	pagination Pagination
	filter     HistoryFilter
	guard      guard.ConstructorGuard
}

func NewGetDriverHistoryQuery(
	driverID kernel.UUID,
	pagination Pagination,
	filter HistoryFilter,
) (GetDriverHistoryQuery, error) {
	err := errors.Join(driverID.Validate(), pagination.Validate())

	if filter.Status != nil {
		err = errors.Join(err, filter.Status.Validate())
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("to", errors.New("must not be before from")))
	}
	if err != nil {
		return GetDriverHistoryQuery{}, err
	}

	return GetDriverHistoryQuery{
		driverID:   driverID,
		pagination: pagination,
		filter:     filter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDriverHistoryQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q GetDriverHistoryQuery) Pagination() Pagination {
	return q.pagination
}

func (q GetDriverHistoryQuery) Filter() HistoryFilter {
	return q.filter
}

func (q GetDriverHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverHistoryQueryIsNotConstructed)
}

// DriverHistory is the driver summary plus one page of its schedules.
type DriverHistory struct {
	Driver    DriverSummary
	Schedules Page[ScheduleView]
}
