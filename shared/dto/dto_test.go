package dto_test

import (
	"marquee/shared/constant"
	"marquee/shared/dto"
	"marquee/shared/failure"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    map[string]string
		wantPage int
		wantErr  bool
	}{
		{
			name:     "absent page defaults to first page",
			query:    map[string]string{},
			wantPage: constant.DefaultValuePage,
		},
		{
			name:     "empty page defaults to first page",
			query:    map[string]string{"page": ""},
			wantPage: constant.DefaultValuePage,
		},
		{
			name:     "numeric page",
			query:    map[string]string{"page": "3"},
			wantPage: 3,
		},
		{
			name:     "out of range pages are kept for clamping",
			query:    map[string]string{"page": "-4"},
			wantPage: -4,
		},
		{
			name:    "non numeric page",
			query:   map[string]string{"page": "two"},
			wantErr: true,
		},
		{
			name:    "fractional page",
			query:   map[string]string{"page": "1.5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.query {
				values.Set(key, value)
			}

			req, err := http.NewRequest(http.MethodGet, "http://example.com/v1/questions?"+values.Encode(), nil)
			require.NoError(t, err)

			params := dto.QueryParams{}
			err = params.FromRequest(req)

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.KindInvalidParameter))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, constant.DefaultValueLimit, params.Limit)
		})
	}
}

func TestQueryParams_Sorting(t *testing.T) {
	params := dto.QueryParams{SortBy: "start_time, venue_id,,artist_id"}

	assert.Equal(t, []string{"start_time", "venue_id", "artist_id"}, params.SortColumns())
	assert.Equal(t, dto.SortDirAsc, params.Direction())

	params.SortDir = "desc"
	assert.Equal(t, dto.SortDirDesc, params.Direction())

	assert.Nil(t, (&dto.QueryParams{}).SortColumns())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality",
			filter:    dto.Filter{Field: "id", Value: 7, Operator: dto.FilterOperatorEq, Table: "venues"},
			wantWhere: "venues.id = :id",
			wantArgs:  map[string]any{"id": 7},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "name", Value: "50%_off", Operator: dto.FilterOperatorLike},
			wantWhere: `LOWER(name) LIKE LOWER(:name) ESCAPE '\'`,
			wantArgs:  map[string]any{"name": `%50\%\_off%`},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "genre_id", ArgName: "g", Value: []int{1, 2}, Operator: dto.FilterOperatorIn},
			wantWhere: "genre_id IN (:g_0, :g_1)",
			wantArgs:  map[string]any{"g_0": 1, "g_1": 2},
		},
		{
			name:      "not in with slice",
			filter:    dto.Filter{Field: "id", Value: []int{4}, Operator: dto.FilterOperatorNotIn, Table: "questions"},
			wantWhere: "questions.id NOT IN (:id_0)",
			wantArgs:  map[string]any{"id_0": 4},
		},
		{
			name:      "empty in matches nothing",
			filter:    dto.Filter{Field: "id", Value: []int{}, Operator: dto.FilterOperatorIn},
			wantWhere: "(1 = 0)",
			wantArgs:  map[string]any{},
		},
		{
			name:      "empty not in excludes nothing",
			filter:    dto.Filter{Field: "id", Value: []int{}, Operator: dto.FilterOperatorNotIn},
			wantWhere: "(1 = 1)",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, strings.TrimSpace(where))
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "category", Value: 2, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "question", Value: "title", Operator: dto.FilterOperatorLike},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, `(category = :category AND LOWER(question) LIKE LOWER(:question) ESCAPE '\' )`, where)
	assert.Equal(t, map[string]any{"category": 2, "question": "%title%"}, args)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b\%c\_d`, dto.EscapeLike(`a\b%c_d`))
	assert.Equal(t, "plain", dto.EscapeLike("plain"))
}
