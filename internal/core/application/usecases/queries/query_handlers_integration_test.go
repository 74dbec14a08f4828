package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "scheduling/internal/adapters/out/postgres"
	"scheduling/internal/adapters/out/postgres/driverrepo"
	"scheduling/internal/adapters/out/postgres/pgtest"
	"scheduling/internal/adapters/out/postgres/routerepo"
	"scheduling/internal/adapters/out/postgres/schedulerepo"
	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/route"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	drivers   *driverrepo.GormDriverRepository
	routes    *routerepo.GormRouteRepository
	schedules *schedulerepo.GormScheduleRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := pgtest.Start(ctx)
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.drivers = driverrepo.NewGormDriverRepository(db, &mockAggregateTracker{})
	suite.routes = routerepo.NewGormRouteRepository(db, &mockAggregateTracker{})
	suite.schedules = schedulerepo.NewGormScheduleRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error)
}

func (suite *QueryHandlersTestSuite) pagination(page, limit int) queries.Pagination {
	p, err := queries.NewPagination(&page, &limit)
	suite.Require().NoError(err)
	return p
}

func (suite *QueryHandlersTestSuite) addDriver(name string, createdAt time.Time) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), name, driver.LicenseB, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.drivers.Add(context.Background(), d))
	return d
}

func (suite *QueryHandlersTestSuite) addRoute(createdAt time.Time) *route.Route {
	r, err := route.NewRoute(kernel.NewUUID(), "Lisbon", "Porto", 313, 180, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.routes.Add(context.Background(), r))
	return r
}

// assign persists a consistent assignment created at the given time.
func (suite *QueryHandlersTestSuite) assign(d *driver.Driver, r *route.Route, at time.Time) *schedule.Schedule {
	ctx := context.Background()

	s, err := schedule.NewSchedule(kernel.NewUUID(), d.ID(), r.ID(), at)
	suite.Require().NoError(err)
	suite.Require().NoError(r.Assign(at))
	suite.Require().NoError(d.Reserve(at))

	suite.Require().NoError(suite.schedules.Add(ctx, s))
	suite.Require().NoError(suite.routes.Update(ctx, r))
	suite.Require().NoError(suite.drivers.Update(ctx, d))
	return s
}

func (suite *QueryHandlersTestSuite) finish(d *driver.Driver, r *route.Route, s *schedule.Schedule, at time.Time) {
	ctx := context.Background()

	suite.Require().NoError(s.Complete(at))
	suite.Require().NoError(r.Complete(at))
	suite.Require().NoError(d.Release(at))

	suite.Require().NoError(suite.schedules.Update(ctx, s))
	suite.Require().NoError(suite.routes.Update(ctx, r))
	suite.Require().NoError(suite.drivers.Update(ctx, d))
}

func (suite *QueryHandlersTestSuite) TestListRoutes_SecondPageOfTwentyFive() {
	for i := range 25 {
		suite.addRoute(baseTime.Add(time.Duration(i) * time.Minute))
	}

	query, err := queries.NewListRoutesQuery(suite.pagination(2, 10), false)
	suite.Require().NoError(err)

	result, err := queries.NewListRoutesQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Items, 10)
	suite.Equal(int64(25), result.Total)
	suite.Equal(2, result.Page)
	suite.Equal(3, result.TotalPages)
	suite.True(result.Items[0].CreatedAt.Equal(baseTime.Add(14 * time.Minute)))
	suite.True(result.Items[9].CreatedAt.Equal(baseTime.Add(5 * time.Minute)))
}

func (suite *QueryHandlersTestSuite) TestListRoutes_OnlyUnassigned() {
	d := suite.addDriver("Alex", baseTime)
	assigned := suite.addRoute(baseTime)
	free := suite.addRoute(baseTime.Add(time.Minute))
	suite.assign(d, assigned, baseTime.Add(time.Hour))

	query, err := queries.NewListRoutesQuery(suite.pagination(1, 10), true)
	suite.Require().NoError(err)

	result, err := queries.NewListRoutesQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(int64(1), result.Total)
	suite.True(result.Items[0].ID.IsEqual(free.ID()))
	suite.Equal("unassigned", result.Items[0].Status)
}

func (suite *QueryHandlersTestSuite) TestListRoutes_PageBeyondEnd() {
	suite.addRoute(baseTime)

	query, err := queries.NewListRoutesQuery(suite.pagination(5, 10), false)
	suite.Require().NoError(err)

	result, err := queries.NewListRoutesQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Items)
	suite.Equal(int64(1), result.Total)
	suite.Equal(1, result.TotalPages)
}

func (suite *QueryHandlersTestSuite) TestListDrivers_OnlyAvailableAndActive() {
	ctx := context.Background()
	available := suite.addDriver("Alex", baseTime)
	busy := suite.addDriver("Sam", baseTime.Add(time.Minute))
	inactive := suite.addDriver("Kim", baseTime.Add(2*time.Minute))

	suite.assign(busy, suite.addRoute(baseTime), baseTime.Add(time.Hour))
	inactive.SetActive(false, baseTime.Add(time.Hour))
	suite.Require().NoError(suite.drivers.Update(ctx, inactive))

	all, err := queries.NewListDriversQuery(suite.pagination(1, 10), false)
	suite.Require().NoError(err)
	result, err := queries.NewListDriversQueryHandler(suite.db).Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Len(result.Items, 3)
	suite.Equal(int64(3), result.Total)
	suite.Equal("Kim", result.Items[0].Name)

	onlyAvailable, err := queries.NewListDriversQuery(suite.pagination(1, 10), true)
	suite.Require().NoError(err)
	result, err = queries.NewListDriversQueryHandler(suite.db).Handle(ctx, onlyAvailable)
	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(int64(1), result.Total)
	suite.True(result.Items[0].ID.IsEqual(available.ID()))
}

func (suite *QueryHandlersTestSuite) TestGetDriverAndRoute() {
	ctx := context.Background()
	d := suite.addDriver("Alex", baseTime)
	r := suite.addRoute(baseTime)

	driverQuery, err := queries.NewGetDriverQuery(d.ID())
	suite.Require().NoError(err)
	dv, err := queries.NewGetDriverQueryHandler(suite.db).Handle(ctx, driverQuery)
	suite.Require().NoError(err)
	suite.Equal("Alex", dv.Name)
	suite.Equal("B", dv.LicenseType)
	suite.True(dv.Availability)
	suite.True(dv.IsActive)
	suite.True(dv.CreatedAt.Equal(baseTime))

	routeQuery, err := queries.NewGetRouteQuery(r.ID())
	suite.Require().NoError(err)
	rv, err := queries.NewGetRouteQueryHandler(suite.db).Handle(ctx, routeQuery)
	suite.Require().NoError(err)
	suite.Equal("Lisbon", rv.StartLocation)
	suite.InDelta(313.0, rv.Distance, 1e-9)
	suite.Equal(180, rv.EstimatedTime)
}

func (suite *QueryHandlersTestSuite) TestGetMissingRecords_NotFound() {
	ctx := context.Background()

	driverQuery, err := queries.NewGetDriverQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetDriverQueryHandler(suite.db).Handle(ctx, driverQuery)
	suite.True(errs.IsNotFound(err))

	routeQuery, err := queries.NewGetRouteQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetRouteQueryHandler(suite.db).Handle(ctx, routeQuery)
	suite.True(errs.IsNotFound(err))

	scheduleQuery, err := queries.NewGetScheduleQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetScheduleQueryHandler(suite.db).Handle(ctx, scheduleQuery)
	suite.True(errs.IsNotFound(err))
}

func (suite *QueryHandlersTestSuite) TestSchedules_JoinProjections() {
	ctx := context.Background()
	d := suite.addDriver("Alex", baseTime)
	r := suite.addRoute(baseTime)
	s := suite.assign(d, r, baseTime.Add(time.Hour))

	query, err := queries.NewGetScheduleQuery(s.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetScheduleQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("active", view.Status)
	suite.Nil(view.CompletedAt)
	suite.Require().NotNil(view.Driver)
	suite.Equal("Alex", view.Driver.Name)
	suite.False(view.Driver.Availability)
	suite.Require().NotNil(view.Route)
	suite.Equal("assigned", view.Route.Status)
	suite.Equal("Porto", view.Route.EndLocation)
}

func (suite *QueryHandlersTestSuite) TestListSchedules_DeletedDriverLeavesNilProjection() {
	ctx := context.Background()
	d := suite.addDriver("Alex", baseTime)
	r := suite.addRoute(baseTime)
	suite.assign(d, r, baseTime.Add(time.Hour))
	suite.Require().NoError(suite.drivers.Delete(ctx, d.ID()))

	query, err := queries.NewListSchedulesQuery(suite.pagination(1, 10))
	suite.Require().NoError(err)

	result, err := queries.NewListSchedulesQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(int64(1), result.Total)
	suite.Nil(result.Items[0].Driver)
	suite.True(result.Items[0].DriverID.IsEqual(d.ID()))
	suite.NotNil(result.Items[0].Route)
}

func (suite *QueryHandlersTestSuite) TestDriverHistory_FiltersAndOrdering() {
	ctx := context.Background()
	d := suite.addDriver("Alex", baseTime)

	var ids []kernel.UUID
	for day := range 3 {
		at := baseTime.AddDate(0, 0, day)
		r := suite.addRoute(at)
		s := suite.assign(d, r, at)
		if day < 2 {
			suite.finish(d, r, s, at.Add(time.Hour))
		}
		ids = append(ids, s.ID())
	}
	other := suite.addDriver("Sam", baseTime)
	suite.assign(other, suite.addRoute(baseTime), baseTime)

	handler := queries.NewGetDriverHistoryQueryHandler(suite.db)

	all, err := queries.NewGetDriverHistoryQuery(d.ID(), suite.pagination(1, 10), queries.HistoryFilter{})
	suite.Require().NoError(err)
	history, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Equal("Alex", history.Driver.Name)
	suite.False(history.Driver.Availability)
	suite.Equal(int64(3), history.Schedules.Total)
	suite.Require().Len(history.Schedules.Items, 3)
	suite.True(history.Schedules.Items[0].ID.IsEqual(ids[2]))
	suite.True(history.Schedules.Items[2].ID.IsEqual(ids[0]))

	completed := schedule.Completed
	from := baseTime.AddDate(0, 0, 1)
	to := baseTime.AddDate(0, 0, 2)
	filtered, err := queries.NewGetDriverHistoryQuery(d.ID(), suite.pagination(1, 10),
		queries.HistoryFilter{Status: &completed, From: &from, To: &to})
	suite.Require().NoError(err)
	history, err = handler.Handle(ctx, filtered)
	suite.Require().NoError(err)
	suite.Equal(int64(1), history.Schedules.Total)
	suite.Require().Len(history.Schedules.Items, 1)
	suite.True(history.Schedules.Items[0].ID.IsEqual(ids[1]))
	suite.NotNil(history.Schedules.Items[0].CompletedAt)
	suite.Equal("completed", history.Schedules.Items[0].Route.Status)
}

func (suite *QueryHandlersTestSuite) TestDriverHistory_MissingDriver() {
	query, err := queries.NewGetDriverHistoryQuery(kernel.NewUUID(), suite.pagination(1, 10), queries.HistoryFilter{})
	suite.Require().NoError(err)

	_, err = queries.NewGetDriverHistoryQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.True(errs.IsNotFound(err))
}

func (suite *QueryHandlersTestSuite) TestConsistencyReport() {
	ctx := context.Background()
	handler := queries.NewGetConsistencyReportQueryHandler(suite.db)

	for i := range 3 {
		d := suite.addDriver(fmt.Sprintf("Driver %d", i), baseTime)
		suite.assign(d, suite.addRoute(baseTime), baseTime.Add(time.Hour))
	}

	report, err := handler.Handle(ctx, queries.NewGetConsistencyReportQuery())
	suite.Require().NoError(err)
	suite.Len(report, 4)
	suite.Zero(report.Total())

	stray := suite.addDriver("Stray", baseTime)
	suite.Require().NoError(suite.db.Exec("UPDATE drivers SET availability = false WHERE id = ?", stray.ID().Bytes()).Error)
	suite.Require().NoError(suite.db.Exec("UPDATE routes SET status = 'assigned' WHERE id = ?",
		suite.addRoute(baseTime).ID().Bytes()).Error)

	report, err = handler.Handle(ctx, queries.NewGetConsistencyReportQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(1), report[queries.UnavailableDriverWithoutSchedule])
	suite.Equal(int64(1), report[queries.AssignedRouteWithoutSchedule])
	suite.Equal(int64(0), report[queries.AvailableDriverWithSchedule])
	suite.Equal(int64(2), report.Total())
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
