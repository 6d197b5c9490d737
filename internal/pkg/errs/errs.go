package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrForbidden         = errors.New("forbidden")
	ErrAmbiguousMatch    = errors.New("ambiguous match")
	ErrNoApplicableRate  = errors.New("no applicable rate")
	ErrConnection        = errors.New("connection error")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that an object could not be located by the
// given identifying parameter.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
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

// ValueIsInvalidError indicates that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
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

// ValueIsOutOfRangeError indicates that a named value is outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
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

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
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

// VersionIsInvalidError indicates an aggregate version mismatch.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ForbiddenError indicates that the caller's roles do not permit the
// requested action on the resource. It is always surfaced to the caller
// verbatim and never retried.
type ForbiddenError struct {
	Resource string
	Action   string
}

func NewForbiddenError(resource, action string) *ForbiddenError {
	return &ForbiddenError{Resource: resource, Action: action}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: resource is: %s, action is: %s", ErrForbidden, e.Resource, e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// AmbiguousMatchError indicates that a lookup expected to pin a single
// candidate matched several. This is a data-integrity signal, not a user
// error: the caller must never resolve it by picking one arbitrarily.
type AmbiguousMatchError struct {
	ParamName string
	Count     int
}

func NewAmbiguousMatchError(paramName string, count int) *AmbiguousMatchError {
	return &AmbiguousMatchError{ParamName: paramName, Count: count}
}

func (e *AmbiguousMatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s matched %d candidates", ErrAmbiguousMatch, e.ParamName, e.Count))
}

func (e *AmbiguousMatchError) Unwrap() error {
	return ErrAmbiguousMatch
}

// NoApplicableRateError indicates that the parcel's dimensions exceed every
// published tier for the requested lane.
type NoApplicableRateError struct {
	Weight float64
	Volume float64
}

func NewNoApplicableRateError(weight, volume float64) *NoApplicableRateError {
	return &NoApplicableRateError{Weight: weight, Volume: volume}
}

func (e *NoApplicableRateError) Error() string {
	return sanitize(fmt.Sprintf("%s: weight %v, volume %v exceed every tier", ErrNoApplicableRate, e.Weight, e.Volume))
}

func (e *NoApplicableRateError) Unwrap() error {
	return ErrNoApplicableRate
}

// ConnectionError wraps a storage-boundary failure. It is logged for
// operators and surfaced to callers as a generic failure.
type ConnectionError struct {
	Cause error
}

func NewConnectionError(cause error) *ConnectionError {
	return &ConnectionError{Cause: cause}
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrConnection, e.Cause))
	}
	return ErrConnection.Error()
}

func (e *ConnectionError) Unwrap() error {
	return ErrConnection
}
