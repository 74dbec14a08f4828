// Package http exposes the scheduling service over a JSON REST API built on echo.
// Requests are checked against the embedded OpenAPI contract before they reach
// a handler; handlers translate them into commands and queries.
package http

import (
	"context"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/route"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/metrics"

	"go.uber.org/zap"
)

// Handler is the shape shared by command and query handlers.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// DeleteHandler is implemented by the delete command handlers.
type DeleteHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers groups every use case the API exposes.
type Handlers struct {
	CreateDriver Handler[commands.CreateDriverCommand, *driver.Driver]
	UpdateDriver Handler[commands.UpdateDriverCommand, *driver.Driver]
	DeleteDriver DeleteHandler[commands.DeleteDriverCommand]

	CreateRoute Handler[commands.CreateRouteCommand, *route.Route]
	UpdateRoute Handler[commands.UpdateRouteCommand, *route.Route]
	DeleteRoute DeleteHandler[commands.DeleteRouteCommand]

	AssignDriver   Handler[commands.AssignDriverCommand, *schedule.Schedule]
	UnassignDriver Handler[commands.UnassignDriverCommand, *schedule.Schedule]
	FinishRoute    Handler[commands.FinishRouteCommand, *schedule.Schedule]

	GetDriver        Handler[queries.GetDriverQuery, queries.DriverView]
	ListDrivers      Handler[queries.ListDriversQuery, queries.Page[queries.DriverView]]
	GetDriverHistory Handler[queries.GetDriverHistoryQuery, queries.DriverHistory]
	GetRoute         Handler[queries.GetRouteQuery, queries.RouteView]
	ListRoutes       Handler[queries.ListRoutesQuery, queries.Page[queries.RouteView]]
	GetSchedule      Handler[queries.GetScheduleQuery, queries.ScheduleView]
	ListSchedules    Handler[queries.ListSchedulesQuery, queries.Page[queries.ScheduleView]]
}

// Info describes the running service on the health and root endpoints.
type Info struct {
	Name        string
	Version     string
	Environment string
}

// Server holds the HTTP handlers. It keeps no per-request state.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *zap.Logger
	info     Info
}

func NewServer(handlers Handlers, m *metrics.Metrics, logger *zap.Logger, info Info) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With(zap.String("component", "http")),
		info:     info,
	}
}
