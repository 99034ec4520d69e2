package di

import (
	"io"
	"marquee/infras/kafka"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	categoryRepository "marquee/internal/domains/category/repository"
	categoryService "marquee/internal/domains/category/service"
)

// provideCategoryRepository seeds the default trivia categories before anything
// reads them.
func provideCategoryRepository(db *postgres.Connection, otl otel.Otel) (categoryRepository.Category, error) {
	repo := categoryRepository.New(db, otl)

	if err := categoryService.Seed(repo, otl); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return repo, nil
}

func provideClosers(db *postgres.Connection, events kafka.Client) []io.Closer {
	return []io.Closer{events, db}
}
