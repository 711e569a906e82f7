package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"roomops/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Kind:    failure.KindConflict,
		Message: "checkout already in progress",
	}

	if f.Error() != "checkout already in progress" {
		t.Errorf("expected error message to be 'checkout already in progress', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    string
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("actual_qty must be greater than or equal to 0"),
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "actual_qty must be greater than or equal to 0",
		},
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("malformed checklist")),
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "malformed checklist",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			kind:    failure.KindNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("checkout already in progress"),
			code:    http.StatusConflict,
			kind:    failure.KindConflict,
			message: "checkout already in progress",
		},
		{
			name:    "NoStaffAvailable",
			err:     failure.NoStaffAvailable("no housekeeping staff available"),
			code:    http.StatusConflict,
			kind:    failure.KindNoStaffAvailable,
			message: "no housekeeping staff available",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			kind:    failure.KindUnauthorized,
			message: "token expired",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("Access denied"),
			code:    http.StatusForbidden,
			kind:    failure.KindForbidden,
			message: "Access denied",
		},
		{
			name:    "Unimplemented",
			err:     failure.Unimplemented("CorrectInspection"),
			code:    http.StatusNotImplemented,
			kind:    failure.KindUnimplemented,
			message: "CorrectInspection",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("database connection failed")),
			code:    http.StatusInternalServerError,
			kind:    failure.KindInternal,
			message: "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, f.Kind)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
	if failure.StoreUnavailable(nil) != nil {
		t.Error("expected StoreUnavailable(nil) to be nil")
	}
}

func TestStoreUnavailable(t *testing.T) {
	result := failure.StoreUnavailable(errors.New("connection reset by peer"))

	if failure.GetCode(result) != http.StatusServiceUnavailable {
		t.Errorf("expected code to be %d, got %d", http.StatusServiceUnavailable, failure.GetCode(result))
	}
	if !failure.Is(result, failure.KindStore) {
		t.Errorf("expected kind to be %s, got %s", failure.KindStore, failure.GetKind(result))
	}
}

func TestGetCodeAndKind(t *testing.T) {
	tests := []struct {
		name         string
		input        error
		expectedCode int
		expectedKind string
	}{
		{
			name:         "failure error",
			input:        failure.Conflict("invoice already generated"),
			expectedCode: http.StatusConflict,
			expectedKind: failure.KindConflict,
		},
		{
			name:         "wrapped failure error",
			input:        fmt.Errorf("initiate checkout: %w", failure.NotFound("room not found")),
			expectedCode: http.StatusNotFound,
			expectedKind: failure.KindNotFound,
		},
		{
			name:         "regular error",
			input:        errors.New("regular error"),
			expectedCode: http.StatusInternalServerError,
			expectedKind: failure.KindInternal,
		},
		{
			name:         "nil error",
			input:        nil,
			expectedCode: http.StatusInternalServerError,
			expectedKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.input); code != tt.expectedCode {
				t.Errorf("expected code to be %d, got %d", tt.expectedCode, code)
			}
			if kind := failure.GetKind(tt.input); kind != tt.expectedKind {
				t.Errorf("expected kind to be %s, got %s", tt.expectedKind, kind)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("assign staff: %w", failure.NoStaffAvailable("all housekeeping staff at capacity"))

	if !failure.Is(err, failure.KindNoStaffAvailable) {
		t.Error("expected wrapped failure to match its kind")
	}
	if failure.Is(err, failure.KindConflict) {
		t.Error("expected kind mismatch to report false")
	}
	if failure.Is(errors.New("plain"), failure.KindInternal) {
		t.Error("expected non-failure error to report false")
	}
}

func TestGetMessage(t *testing.T) {
	wrapped := fmt.Errorf("generate invoice: %w", failure.Conflict("inspection not completed"))

	if msg := failure.GetMessage(wrapped); msg != "inspection not completed" {
		t.Errorf("expected failure message without wrapping, got %q", msg)
	}
	if msg := failure.GetMessage(errors.New("boom")); msg != "boom" {
		t.Errorf("expected raw error text, got %q", msg)
	}
}
