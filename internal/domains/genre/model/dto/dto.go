package dto

import "marquee/internal/domains/genre/model"

type GenreResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

func (g *GenreResponse) FromModel(model model.Genre) {
	g.ID = model.ID
	g.Description = model.Description
}

func FromModels(models []model.Genre) []GenreResponse {
	res := make([]GenreResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// SetGenresRequest replaces the whole genre set of a venue or artist.
type SetGenresRequest struct {
	Genres []int `json:"genres" validate:"unique"`
}
