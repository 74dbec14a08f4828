package http

import (
	"net/http"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type createRouteRequest struct {
	StartLocation string  `json:"startLocation"`
	EndLocation   string  `json:"endLocation"`
	Distance      float64 `json:"distance"`
	EstimatedTime int     `json:"estimatedTime"`
}

type updateRouteRequest struct {
	StartLocation *string  `json:"startLocation"`
	EndLocation   *string  `json:"endLocation"`
	Distance      *float64 `json:"distance"`
	EstimatedTime *int     `json:"estimatedTime"`
}

func (s *Server) CreateRoute(c echo.Context) error {
	var req createRouteRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRouteCommand(req.StartLocation, req.EndLocation, req.Distance, req.EstimatedTime)
	if err != nil {
		return err
	}

	r, err := s.handlers.CreateRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, success(echo.Map{"route": fromRoute(r)}))
}

// ListRoutes reports its count as "totalDocs".
func (s *Server) ListRoutes(c echo.Context) error {
	return s.listRoutes(c, false)
}

func (s *Server) ListUnassignedRoutes(c echo.Context) error {
	return s.listRoutes(c, true)
}

func (s *Server) listRoutes(c echo.Context, onlyUnassigned bool) error {
	p, err := bindPagination(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListRoutesQuery(p, onlyUnassigned)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListRoutes.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := list(page, echo.Map{"routes": mapItems(page.Items, fromRouteView)})
	if !onlyUnassigned {
		resp = resp.withTotalDocs()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) GetRoute(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return err
	}

	v, err := s.handlers.GetRoute.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(echo.Map{"route": fromRouteView(v)}))
}

func (s *Server) UpdateRoute(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRouteRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRouteCommand(id, req.StartLocation, req.EndLocation, req.Distance, req.EstimatedTime)
	if err != nil {
		return err
	}

	r, err := s.handlers.UpdateRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(echo.Map{"route": fromRoute(r)}))
}

func (s *Server) DeleteRoute(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteRouteCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteRoute.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
