// Package errs provides standardized error types for the shipping engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors by how callers are expected to react:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced object does not exist
//   - ObjectAlreadyExistsError: a storage uniqueness constraint rejected a write
//   - ForbiddenError: the actor's role or ownership does not allow the action
//   - StateConflictError: a guard on a state transition rejected the call
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
