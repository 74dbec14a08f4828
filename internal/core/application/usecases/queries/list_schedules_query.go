package queries

import (
	"errors"

	"scheduling/internal/pkg/guard"
)

var ErrListSchedulesQueryIsNotConstructed = errors.New(
	"ListSchedulesQuery must be created via NewListSchedulesQuery constructor",
)

type ListSchedulesQuery struct {
	pagination Pagination
	guard      guard.ConstructorGuard
}

func NewListSchedulesQuery(pagination Pagination) (ListSchedulesQuery, error) {
	if err := pagination.Validate(); err != nil {
		return ListSchedulesQuery{}, err
	}
	return ListSchedulesQuery{pagination: pagination, guard: guard.NewConstructorGuard()}, nil
}

func (q ListSchedulesQuery) Pagination() Pagination {
	return q.pagination
}

func (q ListSchedulesQuery) Validate() error {
	return q.guard.Validate(ErrListSchedulesQueryIsNotConstructed)
}
