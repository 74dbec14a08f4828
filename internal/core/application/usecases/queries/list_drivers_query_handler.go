package queries

import (
	"context"

	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) (Page[DriverView], error) {
	if err := query.Validate(); err != nil {
		return Page[DriverView]{}, err
	}

	where := ""
	if query.OnlyAvailable() {
		where = ` WHERE availability = true AND is_active = true`
	}

	db := h.db.WithContext(ctx)
	p := query.Pagination()

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM drivers` + where).Scan(&total).Error; err != nil {
		return Page[DriverView]{}, errs.NewStoreUnavailableError("count drivers", err)
	}

	var rows []driverRow
	err := db.Raw(
		`SELECT `+driverColumns+` FROM drivers`+where+` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		p.Limit(), p.Offset(),
	).Scan(&rows).Error
	if err != nil {
		return Page[DriverView]{}, errs.NewStoreUnavailableError("list drivers", err)
	}

	drivers, err := views[driverRow, DriverView](rows)
	if err != nil {
		return Page[DriverView]{}, err
	}

	return newPage(drivers, total, p), nil
}
