package shared

import (
	"fmt"
	"marquee/shared/dto"
	"marquee/shared/failure"
	"math"
	"reflect"
	"strconv"
	"strings"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the db-tagged fields of a struct into a column map for a
// full replace update. Every field is included, zero values too; nil pointers, fields
// tagged db:"-" and fields tagged insert:"-" are skipped.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		tag := typ.Field(index).Tag

		fieldName := tag.Get("db")
		if fieldName == "" || fieldName == "-" || tag.Get("insert") == "-" {
			continue
		}

		if tag.Get("table") != "" {
			continue
		}

		if field.Kind() == reflect.Pointer && field.IsNil() {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts into a colon separated cache key.
func BuildCacheKey(prefix string, parts ...any) string {
	keys := make([]string, 0, len(parts)+1)
	keys = append(keys, prefix)

	for _, part := range parts {
		keys = append(keys, fmt.Sprint(part))
	}

	return strings.Join(keys, ":")
}

// ParseID reads a positive integer id from a path segment. A segment that is not
// one can never name a stored row, so it is reported as entity not found.
func ParseID(raw, entity string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, failure.NotFound(entity + " not found") // nolint:wrapcheck
	}

	return id, nil
}
