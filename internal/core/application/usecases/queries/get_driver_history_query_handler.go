package queries

import (
	"context"
	"strings"

	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDriverHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverHistoryQueryHandler(db *gorm.DB) GetDriverHistoryQueryHandler {
	return GetDriverHistoryQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the driver does not exist,
// even if schedules still reference its ID.
func (h GetDriverHistoryQueryHandler) Handle(ctx context.Context, query GetDriverHistoryQuery) (DriverHistory, error) {
	if err := query.Validate(); err != nil {
		return DriverHistory{}, err
	}

	db := h.db.WithContext(ctx)

	var drivers []driverRow
	err := db.Raw(`SELECT `+driverColumns+` FROM drivers WHERE id = ?`, query.DriverID().Bytes()).Scan(&drivers).Error
	if err != nil {
		return DriverHistory{}, errs.NewStoreUnavailableError("get driver", err)
	}
	if len(drivers) == 0 {
		return DriverHistory{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}

	d, err := drivers[0].view()
	if err != nil {
		return DriverHistory{}, err
	}

	where, args := historyConditions(query)

	var total int64
	if err = db.Raw(`SELECT COUNT(*) FROM schedules s WHERE `+where, args...).Scan(&total).Error; err != nil {
		return DriverHistory{}, errs.NewStoreUnavailableError("count driver history", err)
	}

	p := query.Pagination()

	var rows []scheduleRow
	err = db.Raw(
		scheduleSelect+` WHERE `+where+` ORDER BY s.created_at DESC, s.id LIMIT ? OFFSET ?`,
		append(args, p.Limit(), p.Offset())...,
	).Scan(&rows).Error
	if err != nil {
		return DriverHistory{}, errs.NewStoreUnavailableError("list driver history", err)
	}

	schedules, err := views[scheduleRow, ScheduleView](rows)
	if err != nil {
		return DriverHistory{}, err
	}

	return DriverHistory{
		Driver: DriverSummary{
			ID:           d.ID,
			Name:         d.Name,
			LicenseType:  d.LicenseType,
			Availability: d.Availability,
		},
		Schedules: newPage(schedules, total, p),
	}, nil
}

func historyConditions(query GetDriverHistoryQuery) (string, []any) {
	conditions := []string{"s.driver_id = ?"}
	args := []any{query.DriverID().Bytes()}

	f := query.Filter()
	if f.Status != nil {
		conditions = append(conditions, "s.status = ?")
		args = append(args, f.Status.String())
	}
	if f.From != nil {
		conditions = append(conditions, "s.created_at >= ?")
		args = append(args, f.From.UTC())
	}
	if f.To != nil {
		conditions = append(conditions, "s.created_at <= ?")
		args = append(args, f.To.UTC())
	}

	return strings.Join(conditions, " AND "), args
}
