package queries

import (
	"errors"

	"scheduling/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New("ListDriversQuery must be created via NewListDriversQuery constructor")

// ListDriversQuery pages through drivers, newest first. With onlyAvailable
// set it keeps drivers that are both available and active.
//
// Example:
//
//	p, _ := queries.NewPagination(&page, &limit)
//	q, _ := queries.NewListDriversQuery(p, true)
//	result, err := handler.Handle(ctx, q)
type ListDriversQuery struct {
	pagination    Pagination
	onlyAvailable bool
	guard         guard.ConstructorGuard
}

func NewListDriversQuery(pagination Pagination, onlyAvailable bool) (ListDriversQuery, error) {
	if err := pagination.Validate(); err != nil {
		return ListDriversQuery{}, err
	}
	return ListDriversQuery{
		pagination:    pagination,
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListDriversQuery) Pagination() Pagination {
	return q.pagination
}

func (q ListDriversQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}
