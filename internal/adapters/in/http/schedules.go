package http

import (
	"net/http"

	"scheduling/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListSchedules handles GET /api/v1/schedule.
func (s *Server) ListSchedules(c echo.Context) error {
	p, err := bindPagination(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListSchedulesQuery(p)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListSchedules.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list(page, echo.Map{"schedules": mapItems(page.Items, fromScheduleView)}))
}

// GetSchedule handles GET /api/v1/schedule/:id.
func (s *Server) GetSchedule(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetScheduleQuery(id)
	if err != nil {
		return err
	}

	v, err := s.handlers.GetSchedule.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(echo.Map{"schedule": fromScheduleView(v)}))
}
