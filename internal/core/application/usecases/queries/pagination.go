// Package queries contains the read side of the scheduling service.
// Handlers run plain SQL through GORM and return read models shaped for the
// HTTP responses; they never go through the aggregates or take row locks.
package queries

import (
	"errors"
	"math"

	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var ErrPaginationIsNotConstructed = errors.New("Pagination must be created via NewPagination constructor")

// Pagination is a 1-indexed page window over an ordered listing.
//
// Example:
//
//	p, err := queries.NewPagination(nil, &limit) // page defaults to 1
//	// p.Offset() == 0, p.Limit() == limit
type Pagination struct {
	page  int
	limit int
	guard guard.ConstructorGuard
}

// NewPagination applies the defaults for absent values and rejects
// a page below 1 or a limit outside [1, MaxLimit].
func NewPagination(page, limit *int) (Pagination, error) {
	p := Pagination{page: DefaultPage, limit: DefaultLimit}

	if page != nil {
		p.page = *page
	}
	if limit != nil {
		p.limit = *limit
	}

	var err error
	if p.page < 1 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("page", p.page, 1, math.MaxInt32))
	}
	if p.limit < 1 || p.limit > MaxLimit {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("limit", p.limit, 1, MaxLimit))
	}
	if err != nil {
		return Pagination{}, err
	}

	p.guard = guard.NewConstructorGuard()
	return p, nil
}

func (p Pagination) Validate() error {
	return p.guard.Validate(ErrPaginationIsNotConstructed)
}

func (p Pagination) Page() int {
	return p.page
}

func (p Pagination) Limit() int {
	return p.limit
}

// Offset is the number of rows skipped before the page starts.
func (p Pagination) Offset() int {
	return (p.page - 1) * p.limit
}

// TotalPages returns ceil(total / limit).
func (p Pagination) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.limit) - 1) / int64(p.limit))
}

// Page is one window of a listing plus the global match count.
type Page[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

func newPage[T any](items []T, total int64, p Pagination) Page[T] {
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page(),
		Limit:      p.Limit(),
		TotalPages: p.TotalPages(total),
	}
}
