package shared_test

import (
	"marquee/shared"
	"marquee/shared/dto"
	"marquee/shared/failure"
	"reflect"
	"testing"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "single item", total: 1, limit: 10, expected: 1},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type row struct {
		ID            int     `db:"id"            insert:"-"`
		Name          string  `db:"name"`
		SeekingTalent bool    `db:"seeking_talent"`
		Website       string  `db:"website"`
		Joined        string  `db:"genre"         table:"genres"`
		Ignored       string  `db:"-"`
		Note          *string `db:"note"`
		NoDBTag       string
	}

	tests := []struct {
		name     string
		data     row
		expected map[string]any
	}{
		{
			name: "zero values are kept for a full replace",
			data: row{ID: 3, Name: "Park Square", Ignored: "x", NoDBTag: "y", Joined: "Jazz"},
			expected: map[string]any{
				"name":           "Park Square",
				"seeking_talent": false,
				"website":        "",
			},
		},
		{
			name: "non nil pointers are included",
			data: row{Name: "Hop", SeekingTalent: true, Note: stringPtr("n")},
			expected: map[string]any{
				"name":           "Hop",
				"seeking_talent": true,
				"website":        "",
				"note":           stringPtr("n"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(42, "id", "venues")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    42,
				Operator: dto.FilterOperatorEq,
				Table:    "venues",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []any
		expected string
	}{
		{name: "prefix only", prefix: "limiter", expected: "limiter"},
		{name: "mixed parts", prefix: "limiter", parts: []any{"10.0.0.1", 7}, expected: "limiter:10.0.0.1:7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "12", want: 12},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := shared.ParseID(tt.raw, "venue")

			if tt.wantErr {
				if !failure.Is(err, failure.KindNotFound) || err.Error() != "venue not found" {
					t.Errorf("expected venue not found, got %v", err)
				}

				return
			}

			if err != nil || got != tt.want {
				t.Errorf("expected %d, got %d (%v)", tt.want, got, err)
			}
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
