package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// Absent reports whether a raw JSON member was omitted or null.
func Absent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// CoerceString accepts only a JSON string.
func CoerceString(raw json.RawMessage) (string, bool) {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}

	return value, true
}

// CoerceInt accepts a whole JSON number or a string holding a base-10 integer.
// Fractions are rejected rather than truncated.
func CoerceInt(raw json.RawMessage) (int, bool) {
	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		value, err := strconv.Atoi(number.String())

		return value, err == nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(text))

	return value, err == nil
}
