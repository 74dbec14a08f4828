package http

import (
	"net/http"
	"time"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const (
	operationAssign   = "assign"
	operationUnassign = "unassign"
	operationFinish   = "finish"
)

type driverRefRequest struct {
	DriverID string `json:"driverId"`
}

// AssignDriver handles POST /api/v1/routes/:id/assign-driver.
func (s *Server) AssignDriver(c echo.Context) (err error) {
	defer s.observe(operationAssign, time.Now(), &err)

	cmd, err := bindDriverRef(c, commands.NewAssignDriverCommand)
	if err != nil {
		return err
	}

	sch, err := s.handlers.AssignDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, success(echo.Map{"schedule": fromSchedule(sch)}))
}

// UnassignDriver handles POST /api/v1/routes/:id/unassign-driver.
func (s *Server) UnassignDriver(c echo.Context) (err error) {
	defer s.observe(operationUnassign, time.Now(), &err)

	cmd, err := bindDriverRef(c, commands.NewUnassignDriverCommand)
	if err != nil {
		return err
	}

	sch, err := s.handlers.UnassignDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(echo.Map{"schedule": fromSchedule(sch)}))
}

// FinishRoute handles POST /api/v1/routes/:id/finish.
func (s *Server) FinishRoute(c echo.Context) (err error) {
	defer s.observe(operationFinish, time.Now(), &err)

	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewFinishRouteCommand(routeID)
	if err != nil {
		return err
	}

	sch, err := s.handlers.FinishRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(echo.Map{"schedule": fromSchedule(sch)}))
}

// bindDriverRef reads the route from the path and the driver from the body.
func bindDriverRef[C any](c echo.Context, build func(routeID, driverID kernel.UUID) (C, error)) (C, error) {
	var zero C

	routeID, err := pathID(c)
	if err != nil {
		return zero, err
	}

	var req driverRefRequest
	if err = c.Bind(&req); err != nil {
		return zero, err
	}

	driverID, err := parseID("driverId", req.DriverID)
	if err != nil {
		return zero, err
	}

	return build(routeID, driverID)
}

func (s *Server) observe(operation string, start time.Time, err *error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveWorkflow(operation, metrics.Outcome(*err), start)
}
