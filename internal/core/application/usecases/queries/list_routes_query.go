package queries

import (
	"errors"

	"scheduling/internal/pkg/guard"
)

var ErrListRoutesQueryIsNotConstructed = errors.New("ListRoutesQuery must be created via NewListRoutesQuery constructor")

// ListRoutesQuery pages through routes, newest first, optionally only the
// unassigned ones.
type ListRoutesQuery struct {
	pagination     Pagination
	onlyUnassigned bool
	guard          guard.ConstructorGuard
}

func NewListRoutesQuery(pagination Pagination, onlyUnassigned bool) (ListRoutesQuery, error) {
	if err := pagination.Validate(); err != nil {
		return ListRoutesQuery{}, err
	}
	return ListRoutesQuery{
		pagination:     pagination,
		onlyUnassigned: onlyUnassigned,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q ListRoutesQuery) Pagination() Pagination {
	return q.pagination
}

func (q ListRoutesQuery) OnlyUnassigned() bool {
	return q.onlyUnassigned
}

func (q ListRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListRoutesQueryIsNotConstructed)
}
