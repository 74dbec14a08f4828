package queries

import (
	"context"

	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListSchedulesQueryHandler struct {
	db *gorm.DB
}

func NewListSchedulesQueryHandler(db *gorm.DB) ListSchedulesQueryHandler {
	return ListSchedulesQueryHandler{db: db}
}

// Handle lists every schedule regardless of status, newest first.
func (h ListSchedulesQueryHandler) Handle(ctx context.Context, query ListSchedulesQuery) (Page[ScheduleView], error) {
	if err := query.Validate(); err != nil {
		return Page[ScheduleView]{}, err
	}

	db := h.db.WithContext(ctx)
	p := query.Pagination()

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM schedules`).Scan(&total).Error; err != nil {
		return Page[ScheduleView]{}, errs.NewStoreUnavailableError("count schedules", err)
	}

	var rows []scheduleRow
	err := db.Raw(scheduleSelect+` ORDER BY s.created_at DESC, s.id LIMIT ? OFFSET ?`, p.Limit(), p.Offset()).
		Scan(&rows).Error
	if err != nil {
		return Page[ScheduleView]{}, errs.NewStoreUnavailableError("list schedules", err)
	}

	schedules, err := views[scheduleRow, ScheduleView](rows)
	if err != nil {
		return Page[ScheduleView]{}, err
	}

	return newPage(schedules, total, p), nil
}
