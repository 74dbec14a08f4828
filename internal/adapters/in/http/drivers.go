package http

import (
	"net/http"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type createDriverRequest struct {
	Name        string `json:"name"`
	LicenseType string `json:"licenseType"`
}

type updateDriverRequest struct {
	Name        *string `json:"name"`
	LicenseType *string `json:"licenseType"`
	IsActive    *bool   `json:"isActive"`
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(c echo.Context) error {
	var req createDriverRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDriverCommand(req.Name, req.LicenseType)
	if err != nil {
		return err
	}

	d, err := s.handlers.CreateDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, success(echo.Map{"driver": fromDriver(d)}))
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(c echo.Context) error {
	return s.listDrivers(c, false)
}

// ListAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) ListAvailableDrivers(c echo.Context) error {
	return s.listDrivers(c, true)
}

func (s *Server) listDrivers(c echo.Context, onlyAvailable bool) error {
	p, err := bindPagination(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListDriversQuery(p, onlyAvailable)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListDrivers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	drivers := mapItems(page.Items, fromDriverView)
	return c.JSON(http.StatusOK, list(page, echo.Map{"drivers": drivers}))
}

// GetDriver handles GET /api/v1/drivers/:id.
func (s *Server) GetDriver(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDriverQuery(id)
	if err != nil {
		return err
	}

	v, err := s.handlers.GetDriver.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(echo.Map{"driver": fromDriverView(v)}))
}

// UpdateDriver handles PATCH /api/v1/drivers/:id. Absent fields keep their value.
func (s *Server) UpdateDriver(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateDriverRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDriverCommand(id, req.Name, req.LicenseType, req.IsActive)
	if err != nil {
		return err
	}

	d, err := s.handlers.UpdateDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(echo.Map{"driver": fromDriver(d)}))
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteDriverCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteDriver.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDriverHistory handles GET /api/v1/drivers/:id/history.
func (s *Server) GetDriverHistory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := bindPagination(c)
	if err != nil {
		return err
	}

	filter, err := bindHistoryFilter(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDriverHistoryQuery(id, p, filter)
	if err != nil {
		return err
	}

	history, err := s.handlers.GetDriverHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	schedules := mapItems(history.Schedules.Items, fromScheduleView)
	return c.JSON(http.StatusOK, list(history.Schedules, echo.Map{
		"driver":    fromDriverSummary(history.Driver),
		"schedules": schedules,
	}).withTotalDocs())
}
