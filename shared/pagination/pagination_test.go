package pagination_test

import (
	"marquee/shared/pagination"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  int
	}{
		{name: "no rows", total: 0, want: 0},
		{name: "one row", total: 1, want: 1},
		{name: "exactly one page", total: 10, want: 1},
		{name: "one more than a page", total: 11, want: 2},
		{name: "many pages", total: 95, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.MaxPage(tt.total, pagination.PageSize))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int
		want  int
	}{
		{name: "first page", page: 1, total: 25, want: 1},
		{name: "last page", page: 3, total: 25, want: 3},
		{name: "past the last page", page: 4, total: 25, want: 1},
		{name: "zero", page: 0, total: 25, want: 1},
		{name: "negative", page: -2, total: 25, want: 1},
		{name: "empty result set", page: 1, total: 0, want: 1},
		{name: "empty result set past the end", page: 2, total: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.Clamp(tt.page, tt.total, pagination.PageSize))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Offset(1, 10))
	assert.Equal(t, 20, pagination.Offset(3, 10))
	assert.Equal(t, 0, pagination.Offset(0, 10))
}
