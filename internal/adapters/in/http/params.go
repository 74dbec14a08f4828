package http

import (
	"errors"
	"fmt"
	"time"

	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const dateLayout = "2006-01-02"

func pathID(c echo.Context) (kernel.UUID, error) {
	return parseID("id", c.Param("id"))
}

func parseID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a valid UUID", raw))
	}
	return id, nil
}

// bindQuery binds an optional form-style query parameter.
func bindQuery(c echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

func bindPagination(c echo.Context) (queries.Pagination, error) {
	var page, limit *int

	if err := errors.Join(bindQuery(c, "page", &page), bindQuery(c, "limit", &limit)); err != nil {
		return queries.Pagination{}, err
	}

	return queries.NewPagination(page, limit)
}

func bindHistoryFilter(c echo.Context) (queries.HistoryFilter, error) {
	var status, from, to *string

	err := errors.Join(
		bindQuery(c, "status", &status),
		bindQuery(c, "from", &from),
		bindQuery(c, "to", &to),
	)
	if err != nil {
		return queries.HistoryFilter{}, err
	}

	var filter queries.HistoryFilter

	if status != nil {
		s, parseErr := schedule.ParseStatus(*status)
		if parseErr != nil {
			return queries.HistoryFilter{}, parseErr
		}
		filter.Status = &s
	}

	if filter.From, err = parseBound("from", from, false); err != nil {
		return queries.HistoryFilter{}, err
	}
	if filter.To, err = parseBound("to", to, true); err != nil {
		return queries.HistoryFilter{}, err
	}

	return filter, nil
}

// parseBound accepts RFC 3339 or a bare date. A bare upper bound covers the
// whole day so that both ends of the range stay inclusive.
func parseBound(param string, raw *string, upper bool) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		t = t.UTC()
		return &t, nil
	}

	day, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%q is neither RFC 3339 nor YYYY-MM-DD", *raw))
	}

	if upper {
		day = day.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return &day, nil
}
