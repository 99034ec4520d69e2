package repository

import (
	"marquee/internal/domains/question/model"
	gDto "marquee/shared/dto"
)

// FilterByListing matches questions containing searchTerm, ignoring case, within
// category. An empty term or a category of 0 leaves that condition out.
func FilterByListing(searchTerm string, category int) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if searchTerm != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldQuestion,
			Value:    searchTerm,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if category > 0 {
		filter.Filters = append(filter.Filters, FilterByCategory(category).Filters...)
	}

	return filter
}

func FilterByCategory(category int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCategory, Value: category, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

// FilterByQuiz matches the questions a quiz may still serve: those of category, or of
// every category when allCategories is set, minus the ids in previous.
func FilterByQuiz(category int, allCategories bool, previous []int) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, ArgName: "previous", Value: previous, Operator: gDto.FilterOperatorNotIn, Table: model.TableName},
		},
	}

	if !allCategories {
		filter.Filters = append(filter.Filters, FilterByCategory(category).Filters...)
	}

	return filter
}
