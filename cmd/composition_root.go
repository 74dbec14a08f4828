package cmd

import (
	"scheduling/internal/adapters/in/http"
	"scheduling/internal/adapters/out/postgres"
	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/ports"
	"scheduling/internal/jobs"
	"scheduling/internal/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workflowUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// Handlers wires every command and query handler for the HTTP server.
func (c *CompositionRoot) Handlers() http.Handlers {
	return http.Handlers{
		CreateDriver: commands.NewCreateDriverCommandHandler(c.driverUoWFactory()),
		UpdateDriver: commands.NewUpdateDriverCommandHandler(c.driverUoWFactory()),
		DeleteDriver: commands.NewDeleteDriverCommandHandler(c.driverUoWFactory()),

		CreateRoute: commands.NewCreateRouteCommandHandler(c.routeUoWFactory()),
		UpdateRoute: commands.NewUpdateRouteCommandHandler(c.routeUoWFactory()),
		DeleteRoute: commands.NewDeleteRouteCommandHandler(c.routeUoWFactory()),

		AssignDriver:   commands.NewAssignDriverCommandHandler(c.workflowUoWFactory()),
		UnassignDriver: commands.NewUnassignDriverCommandHandler(c.workflowUoWFactory()),
		FinishRoute:    commands.NewFinishRouteCommandHandler(c.workflowUoWFactory()),

		GetDriver:        queries.NewGetDriverQueryHandler(c.gormDB),
		ListDrivers:      queries.NewListDriversQueryHandler(c.gormDB),
		GetDriverHistory: queries.NewGetDriverHistoryQueryHandler(c.gormDB),
		GetRoute:         queries.NewGetRouteQueryHandler(c.gormDB),
		ListRoutes:       queries.NewListRoutesQueryHandler(c.gormDB),
		GetSchedule:      queries.NewGetScheduleQueryHandler(c.gormDB),
		ListSchedules:    queries.NewListSchedulesQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) Server(info http.Info) *http.Server {
	return http.NewServer(c.Handlers(), c.metrics, c.logger, info)
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetConsistencyReportQueryHandler(c.gormDB),
		c.metrics,
		c.config.AuditSchedule,
		c.logger,
	)
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
