package queries

import (
	"context"

	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetConsistencyReportQueryHandler struct {
	db *gorm.DB
}

func NewGetConsistencyReportQueryHandler(db *gorm.DB) GetConsistencyReportQueryHandler {
	return GetConsistencyReportQueryHandler{db: db}
}

// Handle runs a single read-only statement; it takes no locks.
func (h GetConsistencyReportQueryHandler) Handle(
	ctx context.Context,
	query GetConsistencyReportQuery,
) (ConsistencyReport, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var counts struct {
		UnavailableWithout int64
		AvailableWith      int64
		AssignedWithout    int64
		ManyActive         int64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM drivers d
				WHERE d.availability = false
				AND NOT EXISTS (SELECT 1 FROM schedules s WHERE s.driver_id = d.id AND s.status = 'active')
			) AS unavailable_without,
			(SELECT COUNT(*) FROM drivers d
				WHERE d.availability = true
				AND EXISTS (SELECT 1 FROM schedules s WHERE s.driver_id = d.id AND s.status = 'active')
			) AS available_with,
			(SELECT COUNT(*) FROM routes r
				WHERE r.status = 'assigned'
				AND NOT EXISTS (SELECT 1 FROM schedules s WHERE s.route_id = r.id AND s.status = 'active')
			) AS assigned_without,
			(SELECT COUNT(*) FROM (
				SELECT route_id FROM schedules WHERE status = 'active' GROUP BY route_id HAVING COUNT(*) > 1
			) dup) AS many_active
	`).Scan(&counts).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("consistency report", err)
	}

	return ConsistencyReport{
		UnavailableDriverWithoutSchedule: counts.UnavailableWithout,
		AvailableDriverWithSchedule:      counts.AvailableWith,
		AssignedRouteWithoutSchedule:     counts.AssignedWithout,
		RouteWithManyActiveSchedules:     counts.ManyActive,
	}, nil
}
