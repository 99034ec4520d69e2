package failure_test

import (
	"errors"
	"fmt"
	"marquee/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		kind    failure.Kind
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusUnprocessableEntity,
			kind:    failure.KindInvalidParameter,
		},
		{
			name:    "InvalidCategoryParam",
			failure: failure.InvalidCategoryParam,
			code:    http.StatusUnprocessableEntity,
			kind:    failure.KindInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, tt.failure.Kind)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
		msg  string
	}{
		{
			name: "InvalidReference",
			err:  failure.InvalidReference("Invalid artist or venue ID"),
			code: http.StatusBadRequest,
			kind: failure.KindInvalidReference,
			msg:  "Invalid artist or venue ID",
		},
		{
			name: "NotAvailable",
			err:  failure.NotAvailable("artist or venue is not available"),
			code: http.StatusConflict,
			kind: failure.KindNotAvailable,
			msg:  "artist or venue is not available",
		},
		{
			name: "NotFound",
			err:  failure.NotFound("venue not found"),
			code: http.StatusNotFound,
			kind: failure.KindNotFound,
			msg:  "venue not found",
		},
		{
			name: "InvalidParameter",
			err:  failure.InvalidParameter("page must be an integer"),
			code: http.StatusUnprocessableEntity,
			kind: failure.KindInvalidParameter,
			msg:  "page must be an integer",
		},
		{
			name: "Conflict",
			err:  failure.Conflict("show already exists"),
			code: http.StatusConflict,
			kind: failure.KindConflict,
			msg:  "show already exists",
		},
		{
			name: "StorageFailure",
			err:  failure.StorageFailure(errors.New("connection refused")),
			code: http.StatusInternalServerError,
			kind: failure.KindStorageFailure,
			msg:  "connection refused",
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
			if f.Message != tt.msg {
				t.Errorf("expected message to be %q, got %q", tt.msg, f.Message)
			}
		})
	}
}

func TestStorageFailure_Nil(t *testing.T) {
	if err := failure.StorageFailure(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidationFailed(t *testing.T) {
	err := failure.ValidationFailed(map[string]string{
		"state": "state must be a valid US state code",
		"phone": "phone must match NNN-NNN-NNNN",
	})

	var f *failure.Failure
	if !errors.As(err, &f) {
		t.Fatalf("expected *failure.Failure, got %T", err)
	}

	if f.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected code to be %d, got %d", http.StatusUnprocessableEntity, f.Code)
	}

	if len(f.Fields) != 2 {
		t.Errorf("expected 2 field messages, got %d", len(f.Fields))
	}

	single := failure.ValidationFailedField("body", "malformed JSON")
	if !errors.As(single, &f) || f.Fields["body"] != "malformed JSON" {
		t.Errorf("expected body field message, got %+v", f)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to create show: %w", failure.NotAvailable("test")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetKindAndIs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", failure.InvalidReference("missing"))

	if failure.GetKind(wrapped) != failure.KindInvalidReference {
		t.Errorf("expected InvalidReference, got %s", failure.GetKind(wrapped))
	}

	if failure.GetKind(errors.New("boom")) != failure.KindStorageFailure {
		t.Errorf("expected plain errors to be StorageFailure")
	}

	if !failure.Is(wrapped, failure.KindInvalidReference) {
		t.Error("expected Is to match InvalidReference")
	}

	if failure.Is(wrapped, failure.KindNotAvailable) {
		t.Error("expected Is not to match NotAvailable")
	}
}
