package service

import (
	"context"
	"fmt"
	"marquee/infras/otel"
	"marquee/internal/domains/genre/model"
	"marquee/internal/domains/genre/repository"
	"marquee/seeds"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"slices"

	"github.com/rs/zerolog/log"
)

// Catalog is the genre reference table, loaded once at startup and never written
// afterwards. It is safe for concurrent readers.
type Catalog struct {
	genres []model.Genre
	byID   map[int]model.Genre
}

func NewCatalog(genres []model.Genre) *Catalog {
	sorted := slices.Clone(genres)
	slices.SortFunc(sorted, func(a, b model.Genre) int { return a.ID - b.ID })

	byID := make(map[int]model.Genre, len(sorted))
	for _, genre := range sorted {
		byID[genre.ID] = genre
	}

	return &Catalog{genres: sorted, byID: byID}
}

// Load reads the genres table into a Catalog, seeding it first when it is empty.
func Load(repo repository.Genre, otl otel.Otel) (catalog *Catalog, err error) {
	ctx, scope := otl.NewScope(context.Background(), constant.OtelServiceScopeName, constant.OtelServiceScopeName+".genre.Load")
	defer scope.End()
	defer scope.TraceIfError(&err)

	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count genres")

		return nil, fmt.Errorf("failed to count genres: %w", err)
	}

	if count == 0 {
		if err = seed(ctx, repo); err != nil {
			return nil, err
		}
	}

	genres, err := repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load genres")

		return nil, fmt.Errorf("failed to load genres: %w", err)
	}

	log.Info().Int("genres", len(genres)).Msg("Genre catalog loaded")

	return NewCatalog(genres), nil
}

func seed(ctx context.Context, repo repository.Genre) error {
	descriptions, err := seeds.Genres()
	if err != nil {
		return err //nolint:wrapcheck
	}

	genres := make([]model.Genre, len(descriptions))
	for i, description := range descriptions {
		genres[i] = model.Genre{Description: description}
	}

	if err := repo.InsertBulk(ctx, genres); err != nil {
		log.Error().Err(err).Msg("failed to seed genres")

		return fmt.Errorf("failed to seed genres: %w", err)
	}

	log.Info().Int("genres", len(genres)).Msg("Seeded genre catalog")

	return nil
}

// All returns every genre ordered by id.
func (c *Catalog) All() []model.Genre {
	return slices.Clone(c.genres)
}

func (c *Catalog) Has(id int) bool {
	_, ok := c.byID[id]

	return ok
}

func (c *Catalog) Description(id int) (string, bool) {
	genre, ok := c.byID[id]

	return genre.Description, ok
}

// Validate returns ids deduplicated and sorted, or an InvalidReference failure naming
// the first id that is not in the catalog.
func (c *Catalog) Validate(ids []int) ([]int, error) {
	unique := slices.Clone(ids)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	for _, id := range unique {
		if !c.Has(id) {
			return nil, failure.InvalidReference(fmt.Sprintf("genre %d does not exist", id)) //nolint:wrapcheck
		}
	}

	if unique == nil {
		unique = []int{}
	}

	return unique, nil
}
