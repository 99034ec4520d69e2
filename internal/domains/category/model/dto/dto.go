package dto

import (
	"marquee/internal/domains/category/model"
	"strings"
)

type CategoryRequest struct {
	Type string `json:"type" validate:"required,max=100"`
}

func (r *CategoryRequest) ToModel() model.Category {
	return model.Category{Type: strings.TrimSpace(r.Type)}
}

type CreateCategoryResponse struct {
	ID int `json:"id"`
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

func (r *CategoryResponse) FromModel(m model.Category) {
	r.ID = m.ID
	r.Type = m.Type
}

func FromModels(models []model.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

// TypesByID maps category ids to their type, the shape the question listing embeds.
func TypesByID(models []model.Category) map[int]string {
	types := make(map[int]string, len(models))
	for _, m := range models {
		types[m.ID] = m.Type
	}

	return types
}
