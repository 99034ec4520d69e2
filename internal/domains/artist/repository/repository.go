package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/internal/domains/artist/model"
	gDto "marquee/shared/dto"
	gRepo "marquee/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Artist interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Artist, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Artist, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Artist, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertReturningTx(ctx context.Context, sqltx *sqlx.Tx, model model.Artist) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type artistRepositoryImpl struct {
	gRepo.Repository[model.Artist]
}

func New(db *postgres.Connection, otel otel.Otel) Artist {
	return &artistRepositoryImpl{
		Repository: gRepo.NewRepository[model.Artist](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
