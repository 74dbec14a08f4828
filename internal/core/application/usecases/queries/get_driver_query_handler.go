package queries

import (
	"context"

	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

const driverColumns = `id, name, license_type, availability, is_active, created_at, updated_at`

type GetDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no driver has the ID.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverView, error) {
	if err := query.Validate(); err != nil {
		return DriverView{}, err
	}

	var rows []driverRow
	err := h.db.WithContext(ctx).Raw(
		`SELECT `+driverColumns+` FROM drivers WHERE id = ?`,
		query.DriverID().Bytes(),
	).Scan(&rows).Error
	if err != nil {
		return DriverView{}, errs.NewStoreUnavailableError("get driver", err)
	}

	if len(rows) == 0 {
		return DriverView{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}

	return rows[0].view()
}
