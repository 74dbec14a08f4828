package queries_test

import (
	"testing"
	"time"

	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverHistoryQuery(t *testing.T) {
	p, err := queries.NewPagination(nil, nil)
	require.NoError(t, err)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	completed := schedule.Completed
	unknown := schedule.Status("paused")

	t.Run("valid_filter", func(t *testing.T) {
		q, err := queries.NewGetDriverHistoryQuery(kernel.NewUUID(), p,
			queries.HistoryFilter{Status: &completed, From: &from, To: &to})

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, schedule.Completed, *q.Filter().Status)
	})

	t.Run("same_instant_range", func(t *testing.T) {
		_, err := queries.NewGetDriverHistoryQuery(kernel.NewUUID(), p, queries.HistoryFilter{From: &from, To: &from})

		require.NoError(t, err)
	})

	t.Run("inverted_range", func(t *testing.T) {
		_, err := queries.NewGetDriverHistoryQuery(kernel.NewUUID(), p, queries.HistoryFilter{From: &to, To: &from})

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("unknown_status", func(t *testing.T) {
		_, err := queries.NewGetDriverHistoryQuery(kernel.NewUUID(), p, queries.HistoryFilter{Status: &unknown})

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("zero_driver_id", func(t *testing.T) {
		_, err := queries.NewGetDriverHistoryQuery(kernel.UUID{}, p, queries.HistoryFilter{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
