package queries

import (
	"context"

	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetScheduleQueryHandler returns one schedule with its driver and route projections.
type GetScheduleQueryHandler struct {
	db *gorm.DB
}

func NewGetScheduleQueryHandler(db *gorm.DB) GetScheduleQueryHandler {
	return GetScheduleQueryHandler{db: db}
}

func (h GetScheduleQueryHandler) Handle(ctx context.Context, query GetScheduleQuery) (ScheduleView, error) {
	if err := query.Validate(); err != nil {
		return ScheduleView{}, err
	}

	var rows []scheduleRow
	err := h.db.WithContext(ctx).Raw(scheduleSelect+` WHERE s.id = ?`, query.ScheduleID().Bytes()).Scan(&rows).Error
	if err != nil {
		return ScheduleView{}, errs.NewStoreUnavailableError("get schedule", err)
	}

	if len(rows) == 0 {
		return ScheduleView{}, errs.NewObjectNotFoundError("schedule", query.ScheduleID().String())
	}

	return rows[0].view()
}
