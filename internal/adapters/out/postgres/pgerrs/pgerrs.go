// Package pgerrs translates PostgreSQL driver errors into the service's error taxonomy.
package pgerrs

import (
	"errors"

	"scheduling/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Constraint names created by postgres.Migrate.
const (
	ActiveRouteIndex  = "schedules_active_route_uidx"
	ActiveDriverIndex = "schedules_active_driver_uidx"
)

var constraintReasons = map[string]string{
	ActiveRouteIndex:  "route already has an active schedule",
	ActiveDriverIndex: "driver already has an active schedule",
}

// Translate maps unique violations to errs.ConflictError and wraps every other
// driver failure into errs.StoreUnavailableError. Errors from the domain
// taxonomy pass through untouched.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errs.IsValidation(err) || errs.IsNotFound(err) || errs.IsConflict(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		reason, ok := constraintReasons[pgErr.ConstraintName]
		if !ok {
			reason = "duplicate value violates " + pgErr.ConstraintName
		}
		return errs.NewConflictErrorWithCause(reason, err)
	}

	return errs.NewStoreUnavailableError(operation, err)
}
