package commands_test

import (
	"testing"
	"time"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/route"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedRoute(t *testing.T, status route.Status) *route.Route {
	t.Helper()
	created := time.Now().UTC().Add(-time.Hour)
	r, err := route.RestoreRoute(kernel.NewUUID(), "Lisbon", "Porto", 313, 180, status, created, created)
	require.NoError(t, err)
	return r
}

func TestCreateRouteCommandHandler_Handle(t *testing.T) {
	t.Run("stores unassigned route", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateRouteCommand("Lisbon", "Porto", 313.2, 180)
		require.NoError(t, err)

		routeRepo := new(MockRouteRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RouteRepository").Return(routeRepo).Once(),
			routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCreateRouteCommandHandler(MockRouteUoWFactory{uow})
		r, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, r.ID().IsEqual(cmd.RouteID()))
		assert.Equal(t, route.Unassigned, r.Status())
		assert.WithinDuration(t, time.Now().UTC(), r.CreatedAt(), time.Minute)
		routeRepo.AssertExpectations(t)
	})

	t.Run("out of range attributes are rejected before the store", func(t *testing.T) {
		cmd, err := commands.NewCreateRouteCommand("L", "Porto", 0, 2000)
		require.NoError(t, err)

		uow := new(MockUoW)
		handler := commands.NewCreateRouteCommandHandler(MockRouteUoWFactory{uow})

		_, err = handler.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "startLocation")
		assert.Contains(t, err.Error(), "distance")
		assert.Contains(t, err.Error(), "estimatedTime")
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestUpdateRouteCommandHandler_Handle(t *testing.T) {
	t.Run("partial merge keeps status", func(t *testing.T) {
		ctx := t.Context()
		r := storedRoute(t, route.Assigned)
		cmd, err := commands.NewUpdateRouteCommand(r.ID(), nil, ptr("Braga"), ptr(370.0), nil)
		require.NoError(t, err)

		routeRepo := new(MockRouteRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RouteRepository").Return(routeRepo).Once(),
			routeRepo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once(),
			routeRepo.On("Update", ctx, r).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewUpdateRouteCommandHandler(MockRouteUoWFactory{uow})
		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Lisbon", updated.StartLocation())
		assert.Equal(t, "Braga", updated.EndLocation())
		assert.InDelta(t, 370.0, updated.Distance(), 1e-9)
		assert.Equal(t, 180, updated.EstimatedTime())
		assert.Equal(t, route.Assigned, updated.Status())
	})

	t.Run("invalid fields are joined and nothing is written", func(t *testing.T) {
		ctx := t.Context()
		r := storedRoute(t, route.Unassigned)
		cmd, err := commands.NewUpdateRouteCommand(r.ID(), ptr("X"), nil, ptr(-5.0), ptr(0))
		require.NoError(t, err)

		routeRepo := new(MockRouteRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("RouteRepository").Return(routeRepo).Once()
		routeRepo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewUpdateRouteCommandHandler(MockRouteUoWFactory{uow})
		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "startLocation")
		assert.Contains(t, err.Error(), "distance")
		assert.Contains(t, err.Error(), "estimatedTime")
		routeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
