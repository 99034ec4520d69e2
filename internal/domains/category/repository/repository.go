package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/internal/domains/category/model"
	gDto "marquee/shared/dto"
	gRepo "marquee/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Category interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Category, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Category, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertReturning(ctx context.Context, model model.Category) (int, error)
	InsertBulk(ctx context.Context, models []model.Category) error
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type categoryRepositoryImpl struct {
	gRepo.Repository[model.Category]
}

func New(db *postgres.Connection, otel otel.Otel) Category {
	return &categoryRepositoryImpl{
		Repository: gRepo.NewRepository[model.Category](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

