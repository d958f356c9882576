// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the coordinator
// operations distinguish:
//   - ObjectNotFoundError: an order, driver, or availability window does not exist
//   - ValueIsInvalidError: a value fails validation (self-transfer, malformed input)
//   - ValueIsRequiredError: a required value is missing
//   - ConflictError: a lifecycle or custody precondition is violated, or a row
//     lock could not be acquired and the caller should retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel, so callers classify with errors.Is
//
// The HTTP adapter maps these classes onto status codes (404/400/409); anything
// outside the taxonomy is treated as an internal failure and surfaced generically.
package errs
