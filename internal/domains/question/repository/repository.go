package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/internal/domains/question/model"
	gDto "marquee/shared/dto"
	gRepo "marquee/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Question interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Question, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Question, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertReturning(ctx context.Context, model model.Question) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type questionRepositoryImpl struct {
	gRepo.Repository[model.Question]
}

func New(db *postgres.Connection, otel otel.Otel) Question {
	return &questionRepositoryImpl{
		Repository: gRepo.NewRepository[model.Question](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
