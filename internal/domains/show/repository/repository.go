package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/internal/domains/show/model"
	gDto "marquee/shared/dto"
	gRepo "marquee/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Show interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Show, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Show) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type showRepositoryImpl struct {
	gRepo.Repository[model.Show]
}

func New(db *postgres.Connection, otel otel.Otel) Show {
	return &showRepositoryImpl{
		Repository: gRepo.NewRepository[model.Show](model.EntityName, model.TableName, model.FieldStartTime, db, otel),
	}
}
