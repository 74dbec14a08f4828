package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":      statusSuccess,
		"message":     s.info.Name + " API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": s.info.Environment,
	})
}

func (s *Server) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  statusSuccess,
		"message": "Welcome to " + s.info.Name + " API",
		"version": s.info.Version,
		"endpoints": echo.Map{
			"routes":   "/api/v1/routes",
			"drivers":  "/api/v1/drivers",
			"schedule": "/api/v1/schedule",
			"health":   "/api/v1/health",
			"docs":     "/swagger/index.html",
		},
	})
}

func (s *Server) OpenAPI(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", OpenAPISpec())
}
