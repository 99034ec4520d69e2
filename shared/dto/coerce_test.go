package dto_test

import (
	"encoding/json"
	"marquee/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{raw: `3`, want: 3, wantOK: true},
		{raw: `"4"`, want: 4, wantOK: true},
		{raw: `" 5 "`, want: 5, wantOK: true},
		{raw: `-1`, want: -1, wantOK: true},
		{raw: `2.5`},
		{raw: `"2.5"`},
		{raw: `"three"`},
		{raw: `true`},
		{raw: `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := dto.CoerceInt(json.RawMessage(tt.raw))

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceString(t *testing.T) {
	value, ok := dto.CoerceString(json.RawMessage(`"What is the capital of France?"`))
	assert.True(t, ok)
	assert.Equal(t, "What is the capital of France?", value)

	_, ok = dto.CoerceString(json.RawMessage(`42`))
	assert.False(t, ok)
}

func TestAbsent(t *testing.T) {
	assert.True(t, dto.Absent(nil))
	assert.True(t, dto.Absent(json.RawMessage(" null ")))
	assert.False(t, dto.Absent(json.RawMessage(`0`)))
}
