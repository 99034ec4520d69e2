package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"gt":          "{field} must be greater than {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"url":         "{field} must be a valid URL",
		"phone":       "{field} must match the format NNN-NNN-NNNN",
		"usstate":     "{field} must be a valid US state code",
		"datetime":    "{field} must be a timestamp in the format {param}",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
		"unique":      "{field} must not contain duplicates",
	}
)

// fieldMessages renders one message per failing field, keyed by the field's json name.
func fieldMessages(err error) map[string]string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return map[string]string{"body": err.Error()}
	}

	fields := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		if _, ok := fields[field]; ok {
			continue
		}

		fields[field] = message(valErr)
	}

	return fields
}

func message(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}
