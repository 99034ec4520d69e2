package service

import (
	"context"
	"fmt"
	"marquee/infras/otel"
	"marquee/internal/domains/category/model"
	"marquee/internal/domains/category/repository"
	"marquee/seeds"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"

	"github.com/rs/zerolog/log"
)

// Seed fills an empty categories table with the default trivia categories. A table
// that already holds rows is left untouched.
func Seed(repo repository.Category, otl otel.Otel) (err error) {
	ctx, scope := otl.NewScope(context.Background(), constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.Seed")
	defer scope.End()
	defer scope.TraceIfError(&err)

	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count categories")

		return fmt.Errorf("failed to count categories: %w", err)
	}

	if count > 0 {
		return nil
	}

	types, err := seeds.Categories()
	if err != nil {
		return err //nolint:wrapcheck
	}

	categories := make([]model.Category, len(types))
	for i, kind := range types {
		categories[i] = model.Category{Type: kind}
	}

	if err = repo.InsertBulk(ctx, categories); err != nil {
		log.Error().Err(err).Msg("failed to seed categories")

		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Info().Int("categories", len(categories)).Msg("Seeded trivia categories")

	return nil
}
