package services_test

import (
	"testing"
	"time"

	"scheduling/internal/core/domain/model/driver"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/route"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Alex", driver.LicenseB, testNow)
	require.NoError(t, err)
	return d
}

func newRoute(t *testing.T) *route.Route {
	t.Helper()
	r, err := route.NewRoute(kernel.NewUUID(), "Lisbon", "Porto", 313, 180, testNow)
	require.NoError(t, err)
	return r
}

// assigned returns a driver, route and active schedule produced by a successful Assign.
func assigned(t *testing.T) (*driver.Driver, *route.Route, *schedule.Schedule) {
	t.Helper()
	d, r := newDriver(t), newRoute(t)
	s, err := services.NewAssignmentWorkflow().Assign(d, r, kernel.NewUUID(), testNow)
	require.NoError(t, err)
	return d, r, s
}

func TestAssignmentWorkflow_Assign(t *testing.T) {
	workflow := services.NewAssignmentWorkflow()

	t.Run("should link available driver and unassigned route", func(t *testing.T) {
		d, r := newDriver(t), newRoute(t)
		scheduleID := kernel.NewUUID()

		s, err := workflow.Assign(d, r, scheduleID, testNow)

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(scheduleID))
		assert.Equal(t, schedule.Active, s.Status())
		assert.True(t, s.Links(d.ID(), r.ID()))
		assert.Equal(t, route.Assigned, r.Status())
		assert.False(t, d.IsAvailable())
	})

	t.Run("should reject busy driver before looking at route", func(t *testing.T) {
		d, _, _ := assigned(t)
		completedRoute := newRoute(t)
		require.NoError(t, completedRoute.Assign(testNow))
		require.NoError(t, completedRoute.Complete(testNow))

		s, err := workflow.Assign(d, completedRoute, kernel.NewUUID(), testNow)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.True(t, errs.IsConflict(err))
		assert.Contains(t, err.Error(), "driver is not available")
	})

	t.Run("should reject assigned route and leave driver untouched", func(t *testing.T) {
		_, r, _ := assigned(t)
		other := newDriver(t)

		_, err := workflow.Assign(other, r, kernel.NewUUID(), testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "route is already assigned")
		assert.True(t, other.IsAvailable())
	})

	t.Run("should reject completed route", func(t *testing.T) {
		d, r, s := assigned(t)
		require.NoError(t, workflow.Finish(r, s, d, testNow))

		_, err := workflow.Assign(newDriver(t), r, kernel.NewUUID(), testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "route is already completed")
	})

	t.Run("should reject aggregates not built by constructors", func(t *testing.T) {
		_, err := workflow.Assign(&driver.Driver{}, newRoute(t), kernel.NewUUID(), testNow)
		require.ErrorIs(t, err, driver.ErrDriverIsNotConstructed)

		_, err = workflow.Assign(newDriver(t), nil, kernel.NewUUID(), testNow)
		require.ErrorIs(t, err, route.ErrRouteIsNotConstructed)
	})
}

func TestAssignmentWorkflow_Unassign(t *testing.T) {
	workflow := services.NewAssignmentWorkflow()

	t.Run("should cancel schedule and free both sides", func(t *testing.T) {
		d, r, s := assigned(t)

		err := workflow.Unassign(d, r, s, testNow)

		require.NoError(t, err)
		assert.Equal(t, schedule.Cancelled, s.Status())
		assert.Equal(t, route.Unassigned, r.Status())
		assert.True(t, d.IsAvailable())
	})

	t.Run("should reject available driver", func(t *testing.T) {
		_, r, s := assigned(t)

		err := workflow.Unassign(newDriver(t), r, s, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "driver is already available")
	})

	t.Run("should reject unassigned route", func(t *testing.T) {
		d, _, s := assigned(t)

		err := workflow.Unassign(d, newRoute(t), s, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "route is already unassigned")
	})

	t.Run("should reject driver and route that are not linked", func(t *testing.T) {
		d1, _, _ := assigned(t)
		d2, r2, s2 := assigned(t)

		err := workflow.Unassign(d1, r2, s2, testNow)

		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
		assert.Contains(t, err.Error(), "no active schedule links")
		assert.Equal(t, schedule.Active, s2.Status())
		assert.Equal(t, route.Assigned, r2.Status())
		assert.False(t, d1.IsAvailable())
		assert.False(t, d2.IsAvailable())
	})

	t.Run("should reject missing active schedule", func(t *testing.T) {
		d, r, _ := assigned(t)

		err := workflow.Unassign(d, r, nil, testNow)

		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
	})
}

func TestAssignmentWorkflow_Finish(t *testing.T) {
	workflow := services.NewAssignmentWorkflow()

	t.Run("should complete schedule and route and release driver", func(t *testing.T) {
		d, r, s := assigned(t)
		finishedAt := testNow.Add(2 * time.Hour)

		err := workflow.Finish(r, s, d, finishedAt)

		require.NoError(t, err)
		assert.Equal(t, schedule.Completed, s.Status())
		require.NotNil(t, s.CompletedAt())
		assert.Equal(t, finishedAt, *s.CompletedAt())
		assert.Equal(t, route.Completed, r.Status())
		assert.True(t, d.IsAvailable())
	})

	t.Run("should reject unassigned route", func(t *testing.T) {
		err := workflow.Finish(newRoute(t), nil, nil, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "route is not assigned")
	})

	t.Run("should reject finishing twice", func(t *testing.T) {
		d, r, s := assigned(t)
		require.NoError(t, workflow.Finish(r, s, d, testNow))

		err := workflow.Finish(r, s, d, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "route is already completed")
	})

	t.Run("should refuse to release a driver other than the schedule's", func(t *testing.T) {
		_, r, s := assigned(t)
		stranger, _, _ := assigned(t)

		err := workflow.Finish(r, s, stranger, testNow)

		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
		assert.False(t, stranger.IsAvailable())
		assert.Equal(t, schedule.Active, s.Status())
	})

	t.Run("should complete when schedule driver record is gone", func(t *testing.T) {
		_, r, s := assigned(t)

		err := workflow.Finish(r, s, nil, testNow)

		require.NoError(t, err)
		assert.Equal(t, route.Completed, r.Status())
		assert.Equal(t, schedule.Completed, s.Status())
	})
}
