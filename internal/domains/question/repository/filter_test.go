package repository_test

import (
	"marquee/internal/domains/question/model"
	"marquee/internal/domains/question/repository"
	gDto "marquee/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByListing(t *testing.T) {
	tests := []struct {
		name       string
		searchTerm string
		category   int
		wantFields []string
		wantTerm   any
	}{
		{name: "no conditions", wantFields: nil},
		{name: "term kept as given", searchTerm: "  ", wantFields: []string{model.FieldQuestion}, wantTerm: "  "},
		{name: "term and category", searchTerm: "title", category: 2, wantFields: []string{model.FieldQuestion, model.FieldCategory}, wantTerm: "title"},
		{name: "category only", category: 3, wantFields: []string{model.FieldCategory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.FilterByListing(tt.searchTerm, tt.category)

			assert.Equal(t, gDto.FilterGroupOperatorAnd, filter.Operator)

			var fields []string
			for _, f := range filter.Filters {
				fields = append(fields, f.(gDto.Filter).Field)
			}

			assert.Equal(t, tt.wantFields, fields)

			if tt.wantTerm != nil {
				term := filter.Filters[0].(gDto.Filter)
				assert.Equal(t, tt.wantTerm, term.Value)
				assert.Equal(t, gDto.FilterOperatorLike, term.Operator)
			}
		})
	}
}
