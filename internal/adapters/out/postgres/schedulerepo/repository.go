package schedulerepo

import (
	"context"
	"errors"

	"scheduling/internal/adapters/out/postgres/pgerrs"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormScheduleRepository implements ports.ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleRepository {
	return &GormScheduleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a schedule. A second active schedule for the same route or
// driver is rejected by the partial unique indexes and reported as a conflict.
func (r *GormScheduleRepository) Add(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate("add schedule", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormScheduleRepository) Update(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ScheduleDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Translate("update schedule", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("schedule", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.take(r.db.WithContext(ctx), "schedule", id.String(), "id = ?", id.Bytes())
}

func (r *GormScheduleRepository) FindActiveByRoute(ctx context.Context, routeID kernel.UUID) (*schedule.Schedule, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	return r.take(
		r.locked(ctx),
		"active schedule for route", routeID.String(),
		"route_id = ? AND status = ?", routeID.Bytes(), schedule.Active.String(),
	)
}

func (r *GormScheduleRepository) FindActiveByDriverAndRoute(
	ctx context.Context,
	driverID, routeID kernel.UUID,
) (*schedule.Schedule, error) {
	if err := errors.Join(driverID.Validate(), routeID.Validate()); err != nil {
		return nil, err
	}

	return r.take(
		r.locked(ctx),
		"active schedule for route", routeID.String(),
		"driver_id = ? AND route_id = ? AND status = ?", driverID.Bytes(), routeID.Bytes(), schedule.Active.String(),
	)
}

func (r *GormScheduleRepository) locked(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *GormScheduleRepository) take(db *gorm.DB, param, id string, query string, args ...any) (*schedule.Schedule, error) {
	var dto ScheduleDTO
	if err := db.Where(query, args...).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, pgerrs.Translate("get "+param, err)
	}

	return toDomain(dto)
}
