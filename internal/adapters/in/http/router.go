package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// RouterConfig holds the transport settings of the echo instance.
type RouterConfig struct {
	CORSOrigins []string
	// Gatherer backs /metrics; nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance with middleware, validation and all routes.
//
// Example:
//
//	e, err := http.NewRouter(ctx, server, http.RouterConfig{CORSOrigins: []string{"*"}})
//	if err != nil {
//	    return err
//	}
//	e.Start(":8080")
func NewRouter(ctx context.Context, s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(s.logger)))
	e.Use(middleware.CORSWithConfig(corsConfig(cfg.CORSOrigins)))

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e.GET("/", s.Root)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/v1/openapi.yaml")))

	v1 := e.Group("/api/v1")
	v1.GET("/health", s.Health)
	v1.GET("/openapi.yaml", s.OpenAPI)

	api := v1.Group("", validate)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.ListDrivers)
	api.GET("/drivers/available", s.ListAvailableDrivers)
	api.GET("/drivers/:id", s.GetDriver)
	api.PATCH("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)
	api.GET("/drivers/:id/history", s.GetDriverHistory)

	api.POST("/routes", s.CreateRoute)
	api.GET("/routes", s.ListRoutes)
	api.GET("/routes/unassigned", s.ListUnassignedRoutes)
	api.GET("/routes/:id", s.GetRoute)
	api.PATCH("/routes/:id", s.UpdateRoute)
	api.DELETE("/routes/:id", s.DeleteRoute)
	api.POST("/routes/:id/assign-driver", s.AssignDriver)
	api.POST("/routes/:id/unassign-driver", s.UnassignDriver)
	api.POST("/routes/:id/finish", s.FinishRoute)

	api.GET("/schedule", s.ListSchedules)
	api.GET("/schedule/:id", s.GetSchedule)

	return e, nil
}

func corsConfig(origins []string) middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = !(len(origins) == 1 && origins[0] == "*")
	}
	cfg.AllowMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	return cfg
}

func requestLoggerConfig(logger *zap.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,

		Skipper: func(c echo.Context) bool { return strings.HasPrefix(c.Path(), "/metrics") },

		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}
}
