package queries

import (
	"context"
	"errors"

	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

const routeColumns = `id, start_location, end_location, distance, estimated_time, status, created_at, updated_at`

type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	var row routeRow
	err := h.db.WithContext(ctx).Raw(
		`SELECT `+routeColumns+` FROM routes WHERE id = ?`,
		query.RouteID().Bytes(),
	).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RouteView{}, errs.NewObjectNotFoundError("route", query.RouteID().String())
		}
		return RouteView{}, errs.NewStoreUnavailableError("get route", err)
	}

	return row.view()
}
