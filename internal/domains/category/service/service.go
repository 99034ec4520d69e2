package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/internal/domains/category/model"
	"marquee/internal/domains/category/model/dto"
	"marquee/internal/domains/category/repository"
	questionModel "marquee/internal/domains/question/model"
	questionRepo "marquee/internal/domains/question/repository"
	"marquee/shared"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const msgCategoryNotFound = "category not found"

type Category interface {
	Create(ctx context.Context, req dto.CategoryRequest) (dto.CreateCategoryResponse, error)
	GetAll(ctx context.Context) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id int) (dto.CategoryResponse, error)
	Update(ctx context.Context, req dto.CategoryRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo       repository.Category
	questions  questionRepo.Question
	transactor postgres.Transactor
	otel       otel.Otel
}

func New(repo repository.Category, questions questionRepo.Question, transactor postgres.Transactor, otel otel.Otel) Category {
	return &serviceImpl{
		repo:       repo,
		questions:  questions,
		transactor: transactor,
		otel:       otel,
	}
}

func filterByID(id int) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CategoryRequest) (res dto.CreateCategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	id, err := s.repo.InsertReturning(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create category")

		return res, fmt.Errorf("failed to create category: %w", err)
	}

	res.ID = id

	return res, nil
}

// GetAll returns every category ordered by id.
func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	categories, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return dto.FromModels(categories), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	category, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int("category_id", id).Msg("failed to get category")

		return res, fmt.Errorf("failed to get category: %w", err)
	}

	if category.ID == 0 {
		return res, failure.NotFound(msgCategoryNotFound) // nolint:wrapcheck
	}

	res.FromModel(category)

	return res, nil
}

func (s *serviceImpl) exist(ctx context.Context, id int) error {
	exist, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgCategoryNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.CategoryRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.exist(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req.ToModel()), filterByID(id)); err != nil {
		log.Error().Err(err).Int("category_id", id).Msg("failed to update category")

		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// Delete removes the category and every question filed under it.
func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".category.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.exist(ctx, id); err != nil {
		return err
	}

	result := s.transactor.Run(ctx, func(tx *sqlx.Tx) error {
		questions := shared.FilterByID(id, questionModel.FieldCategory, questionModel.TableName)
		if err := s.questions.DeleteTx(ctx, tx, questions); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, filterByID(id))
	})
	if !result.Committed() {
		log.Error().Err(result.Err).Int("category_id", id).Msg("failed to delete category")

		return fmt.Errorf("failed to delete category: %w", result.Err)
	}

	return nil
}
