// Package errs provides standardized error types for the scheduling service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the assignment engine:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced driver, route or schedule does not exist
//   - ConflictError: a precondition on the current state was violated
//   - StoreUnavailableError: the store failed for a reason unrelated to the request
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, or with the
// IsValidation, IsNotFound and IsConflict helpers.
package errs
