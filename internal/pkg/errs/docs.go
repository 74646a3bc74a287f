// Package errs defines the error taxonomy shared by the domain model, the
// application layer and the adapters. Every failure a caller can act on maps
// to one of these types:
//
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails a format or business rule
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed range
//   - ObjectNotFoundError: the referenced object does not exist
//   - ActorForbiddenError: the acting user may not perform the operation
//   - TransitionIsInvalidError: an illegal order state transition
//   - AlreadyProcessedError: a one-shot operation was already applied
//
// Each type follows the same pattern: a sentinel error variable (for example
// ErrValueIsRequired), a struct carrying the details, constructors with and
// without a cause, an Error() formatter and Unwrap() so callers can classify
// failures with errors.Is and errors.As. The HTTP adapter relies on this to
// pick status codes without inspecting message text.
package errs
