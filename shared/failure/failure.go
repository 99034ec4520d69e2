package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independently of the transport status code.
type Kind string

const (
	KindValidationFailed Kind = "ValidationFailed"
	KindInvalidReference Kind = "InvalidReference"
	KindNotAvailable     Kind = "NotAvailable"
	KindNotFound         Kind = "NotFound"
	KindInvalidParameter Kind = "InvalidParameter"
	KindConflict         Kind = "Conflict"
	KindStorageFailure   Kind = "StorageFailure"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int               `json:"code"`
	Kind    Kind              `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusUnprocessableEntity, Kind: KindInvalidParameter, Message: "invalid page parameter"}
var InvalidCategoryParam = &Failure{Code: http.StatusUnprocessableEntity, Kind: KindInvalidParameter, Message: "invalid category parameter"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// ValidationFailed returns a new Failure carrying one message per failing field.
func ValidationFailed(fields map[string]string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidationFailed,
		Message: "validation failed",
		Fields:  fields,
	}
}

// ValidationFailedField is ValidationFailed for a single field.
func ValidationFailedField(field, message string) error {
	return ValidationFailed(map[string]string{field: message})
}

// InvalidReference returns a new Failure for a referenced id that does not exist.
func InvalidReference(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidReference,
		Message: msg,
	}
}

// NotAvailable returns a new Failure for a booking rejected by the availability rule.
func NotAvailable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindNotAvailable,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: msg,
	}
}

// InvalidParameter returns a new Failure for a malformed query parameter.
func InvalidParameter(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindInvalidParameter,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: msg,
	}
}

// StorageFailure returns a new Failure for an error raised by the backing store.
func StorageFailure(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindStorageFailure,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error, StorageFailure for anything that is not a Failure.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindStorageFailure
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Kind == kind
}
