package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/internal/domains/genre/model"
	gDto "marquee/shared/dto"
	gRepo "marquee/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Genre interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Genre, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertBulk(ctx context.Context, models []model.Genre) error
}

type VenueGenre interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VenueGenre, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.VenueGenre) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type ArtistGenre interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ArtistGenre, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.ArtistGenre) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type genreRepositoryImpl struct {
	gRepo.Repository[model.Genre]
}

func New(db *postgres.Connection, otel otel.Otel) Genre {
	return &genreRepositoryImpl{
		Repository: gRepo.NewRepository[model.Genre](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type venueGenreRepositoryImpl struct {
	gRepo.Repository[model.VenueGenre]
}

func NewVenueGenre(db *postgres.Connection, otel otel.Otel) VenueGenre {
	return &venueGenreRepositoryImpl{
		Repository: gRepo.NewRepository[model.VenueGenre](model.VenueGenreEntityName, model.VenueGenreTableName, model.FieldGenreID, db, otel),
	}
}

type artistGenreRepositoryImpl struct {
	gRepo.Repository[model.ArtistGenre]
}

func NewArtistGenre(db *postgres.Connection, otel otel.Otel) ArtistGenre {
	return &artistGenreRepositoryImpl{
		Repository: gRepo.NewRepository[model.ArtistGenre](model.ArtistGenreEntity, model.ArtistGenreTableName, model.FieldGenreID, db, otel),
	}
}
