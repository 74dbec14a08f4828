package schedulerepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "scheduling/internal/adapters/out/postgres"
	"scheduling/internal/adapters/out/postgres/pgtest"
	"scheduling/internal/adapters/out/postgres/schedulerepo"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type ScheduleRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *schedulerepo.GormScheduleRepository
}

func (suite *ScheduleRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := pgtest.Start(ctx)
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	suite.repo = schedulerepo.NewGormScheduleRepository(db, nopTracker{})
}

func (suite *ScheduleRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error)
}

func (suite *ScheduleRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ScheduleRepositoryTestSuite) add(driverID, routeID kernel.UUID) *schedule.Schedule {
	s, err := schedule.NewSchedule(kernel.NewUUID(), driverID, routeID, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), s))
	return s
}

func (suite *ScheduleRepositoryTestSuite) TestAddAndGet() {
	s := suite.add(kernel.NewUUID(), kernel.NewUUID())

	got, err := suite.repo.Get(context.Background(), s.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(s))
	suite.True(got.DriverID().IsEqual(s.DriverID()))
	suite.True(got.RouteID().IsEqual(s.RouteID()))
	suite.Equal(schedule.Active, got.Status())
	suite.Nil(got.CompletedAt())
	suite.Empty(got.DomainEvents())
}

func (suite *ScheduleRepositoryTestSuite) TestFindActiveByRoute() {
	ctx := context.Background()
	routeID := kernel.NewUUID()
	s := suite.add(kernel.NewUUID(), routeID)

	got, err := suite.repo.FindActiveByRoute(ctx, routeID)
	suite.Require().NoError(err)
	suite.True(got.IsEqual(s))

	suite.Require().NoError(s.Complete(time.Now().UTC()))
	suite.Require().NoError(suite.repo.Update(ctx, s))

	_, err = suite.repo.FindActiveByRoute(ctx, routeID)
	suite.True(errs.IsNotFound(err))

	stored, err := suite.repo.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(schedule.Completed, stored.Status())
	suite.NotNil(stored.CompletedAt())
}

func (suite *ScheduleRepositoryTestSuite) TestFindActiveByDriverAndRoute() {
	ctx := context.Background()
	driverID, routeID := kernel.NewUUID(), kernel.NewUUID()
	s := suite.add(driverID, routeID)

	got, err := suite.repo.FindActiveByDriverAndRoute(ctx, driverID, routeID)
	suite.Require().NoError(err)
	suite.True(got.IsEqual(s))

	_, err = suite.repo.FindActiveByDriverAndRoute(ctx, kernel.NewUUID(), routeID)
	suite.True(errs.IsNotFound(err))
}

func (suite *ScheduleRepositoryTestSuite) TestSecondActiveScheduleIsConflict() {
	ctx := context.Background()
	driverID, routeID := kernel.NewUUID(), kernel.NewUUID()
	suite.add(driverID, routeID)

	other, err := schedule.NewSchedule(kernel.NewUUID(), kernel.NewUUID(), routeID, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, other)
	suite.Require().Error(err)
	suite.True(errs.IsConflict(err))
	suite.Contains(err.Error(), "route already has an active schedule")
}

func (suite *ScheduleRepositoryTestSuite) TestUpdateMissingSchedule() {
	s, err := schedule.NewSchedule(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repo.Update(context.Background(), s)
	suite.True(errs.IsNotFound(err))
}

func TestScheduleRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(ScheduleRepositoryTestSuite))
}
