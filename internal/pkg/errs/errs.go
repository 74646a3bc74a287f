package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
// Every concrete error type in this package unwraps to one of these.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrActorForbidden      = errors.New("actor is not allowed")
	ErrTransitionIsInvalid = errors.New("transition is invalid")
	ErrAlreadyProcessed    = errors.New("object already processed")
)

// sanitize strips newlines from user-supplied values before they are
// embedded in error messages, keeping log lines single-line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a value does not satisfy domain rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ActorForbiddenError indicates that the acting user may not perform the operation.
type ActorForbiddenError struct {
	ActorID string
	Action  string
	Cause   error
}

// NewActorForbiddenError creates an ActorForbiddenError for the given actor and action.
func NewActorForbiddenError(actorID, action string) *ActorForbiddenError {
	return &ActorForbiddenError{
		ActorID: actorID,
		Action:  action,
	}
}

// NewActorForbiddenErrorWithCause creates an ActorForbiddenError wrapping an underlying cause.
func NewActorForbiddenErrorWithCause(actorID, action string, cause error) *ActorForbiddenError {
	return &ActorForbiddenError{
		ActorID: actorID,
		Action:  action,
		Cause:   cause,
	}
}

func (e *ActorForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: actor is: %s, action is: %s (cause: %s)",
			ErrActorForbidden, e.ActorID, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrActorForbidden, e.Action))
}

func (e *ActorForbiddenError) Unwrap() error {
	return ErrActorForbidden
}

// TransitionIsInvalidError indicates an illegal state machine transition.
type TransitionIsInvalidError struct {
	From  string
	To    string
	Cause error
}

// NewTransitionIsInvalidError creates a TransitionIsInvalidError for the given states.
func NewTransitionIsInvalidError(from, to string) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{
		From: from,
		To:   to,
	}
}

// NewTransitionIsInvalidErrorWithCause creates a TransitionIsInvalidError wrapping an underlying cause.
func NewTransitionIsInvalidErrorWithCause(from, to string, cause error) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{
		From:  from,
		To:    to,
		Cause: cause,
	}
}

func (e *TransitionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s -> %s (cause: %s)",
			ErrTransitionIsInvalid, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrTransitionIsInvalid, e.From, e.To))
}

func (e *TransitionIsInvalidError) Unwrap() error {
	return ErrTransitionIsInvalid
}

// AlreadyProcessedError indicates that a one-shot operation was already applied
// to the object, typically because another actor won a race for it.
type AlreadyProcessedError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewAlreadyProcessedError creates an AlreadyProcessedError for the given parameter and identifier.
func NewAlreadyProcessedError(paramName string, id any) *AlreadyProcessedError {
	return &AlreadyProcessedError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewAlreadyProcessedErrorWithCause creates an AlreadyProcessedError wrapping an underlying cause.
func NewAlreadyProcessedErrorWithCause(paramName string, id any, cause error) *AlreadyProcessedError {
	return &AlreadyProcessedError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *AlreadyProcessedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrAlreadyProcessed, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAlreadyProcessed, e.ID))
}

func (e *AlreadyProcessedError) Unwrap() error {
	return ErrAlreadyProcessed
}
