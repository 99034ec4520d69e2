package validator

import (
	"encoding/json"
	"errors"
	"io"
	"marquee/shared/constant"
	"marquee/shared/failure"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var phonePattern = regexp.MustCompile(`^[1-9][0-9]{2}-[0-9]{3}-[0-9]{4}$`)

// States is the fixed set of two-letter codes accepted for venue and artist addresses.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType := file.Header.Get(constant.RequestHeaderContentType)
	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return file.Size <= maxSizeBytes
}

func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(field.Field().String())
}

func registerStateValidation(field val.FieldLevel) bool {
	return slices.Contains(States, field.Field().String())
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	custom := map[string]val.Func{
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"phone":       registerPhoneValidation,
		"usstate":     registerStateValidation,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. A body that is not valid JSON fails on the
// "body" field; otherwise every failing field is reported with its own message.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads JSON into data without running struct validation. A Failure raised by
// the target's own UnmarshalJSON is returned as is.
func Decode[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)
	if err == nil {
		return nil
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail
	}

	return failure.ValidationFailedField("body", "request body must be valid JSON: "+err.Error()) //nolint:wrapcheck
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.ValidationFailed(fieldMessages(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar validates a single value and reports failures under name.
func ValidateVar(field any, name, tag string) error {
	err := validate.Var(field, tag)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if errors.As(err, &valErrors) && len(valErrors) > 0 {
		return failure.ValidationFailedField(name, name+message(valErrors[0])) //nolint:wrapcheck
	}

	return failure.ValidationFailedField(name, err.Error()) //nolint:wrapcheck
}
