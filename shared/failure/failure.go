package failure

import (
	"errors"
	"net/http"
)

const (
	KindValidation       = "validation"
	KindNotFound         = "not_found"
	KindConflict         = "conflict"
	KindNoStaffAvailable = "no_staff_available"
	KindStore            = "store"
	KindUnauthorized     = "unauthorized"
	KindForbidden        = "forbidden"
	KindInternal         = "internal"
	KindUnimplemented    = "unimplemented"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Kind names the error class callers branch on; Message is the human readable reason.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new validation Failure derived from an error.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new validation Failure with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindUnimplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure for concurrent or duplicate state transitions.
// Conflicts are never retried automatically.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// NoStaffAvailable returns a new Failure raised when no housekeeping staff member can take a task.
func NoStaffAvailable(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindNoStaffAvailable,
		Message: message,
	}
}

// StoreUnavailable returns a new retryable Failure for a persistence failure that survived the internal retry.
func StoreUnavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusServiceUnavailable,
			Kind:    KindStore,
			Message: "storage temporarily unavailable, retry the request: " + err.Error(),
		}
	}

	return nil
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the error kind of an error interface.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// GetMessage returns the human readable reason of a Failure, or the raw error text otherwise.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind string) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Kind == kind
}
