package queries

import (
	"context"

	"scheduling/internal/core/domain/model/route"
	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListRoutesQueryHandler struct {
	db *gorm.DB
}

func NewListRoutesQueryHandler(db *gorm.DB) ListRoutesQueryHandler {
	return ListRoutesQueryHandler{db: db}
}

func (h ListRoutesQueryHandler) Handle(ctx context.Context, query ListRoutesQuery) (Page[RouteView], error) {
	if err := query.Validate(); err != nil {
		return Page[RouteView]{}, err
	}

	tx := h.db.WithContext(ctx).Table("routes")
	if query.OnlyUnassigned() {
		tx = tx.Where("status = ?", route.Unassigned.String())
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[RouteView]{}, errs.NewStoreUnavailableError("count routes", err)
	}

	p := query.Pagination()

	var rows []routeRow
	err := tx.Session(&gorm.Session{}).
		Select(routeColumns).
		Order("created_at DESC, id").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Scan(&rows).Error
	if err != nil {
		return Page[RouteView]{}, errs.NewStoreUnavailableError("list routes", err)
	}

	routes, err := views[routeRow, RouteView](rows)
	if err != nil {
		return Page[RouteView]{}, err
	}

	return newPage(routes, total, p), nil
}
