package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marquee/infras/otel"
	categoryModel "marquee/internal/domains/category/model"
	categoryDto "marquee/internal/domains/category/model/dto"
	categoryRepo "marquee/internal/domains/category/repository"
	"marquee/internal/domains/question/model"
	"marquee/internal/domains/question/model/dto"
	"marquee/internal/domains/question/repository"
	"marquee/shared"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"marquee/shared/pagination"

	"github.com/rs/zerolog/log"
)

const msgQuestionNotFound = "question not found"

type Question interface {
	Create(ctx context.Context, req dto.QuestionRequest) (dto.CreateQuestionResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, searchTerm string, category int) (dto.GetQuestionsResponse, error)
	GetByCategory(ctx context.Context, params gDto.QueryParams, category int) (dto.GetQuestionsResponse, error)
	Get(ctx context.Context, id int) (dto.QuestionResponse, error)
	Update(ctx context.Context, req dto.QuestionRequest, id int) error
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo       repository.Question
	categories categoryRepo.Category
	otel       otel.Otel
}

func New(repo repository.Question, categories categoryRepo.Category, otel otel.Otel) Question {
	return &serviceImpl{
		repo:       repo,
		categories: categories,
		otel:       otel,
	}
}

func filterByID(id int) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func filterByCategoryID(id int) gDto.FilterGroup {
	return shared.FilterByID(id, categoryModel.FieldID, categoryModel.TableName)
}

func (s *serviceImpl) categoryExists(ctx context.Context, id int) (bool, error) {
	exist, err := s.categories.Exist(ctx, filterByCategoryID(id))
	if err != nil {
		log.Error().Err(err).Int("category_id", id).Msg("failed to check if category exists")

		return false, fmt.Errorf("failed to check if category exists: %w", err)
	}

	return exist, nil
}

// checkCategory reports a category that does not exist as an InvalidReference.
func (s *serviceImpl) checkCategory(ctx context.Context, id int) error {
	exist, err := s.categoryExists(ctx, id)
	if err != nil {
		return err
	}

	if !exist {
		return failure.InvalidReference(fmt.Sprintf("category %d does not exist", id)) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.QuestionRequest) (res dto.CreateQuestionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".question.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	question := req.ToModel()

	if err = s.checkCategory(ctx, question.Category); err != nil {
		return res, err
	}

	id, err := s.repo.InsertReturning(ctx, question)
	if err != nil {
		log.Error().Err(err).Msg("failed to create question")

		return res, fmt.Errorf("failed to create question: %w", err)
	}

	res.ID = id

	return res, nil
}

// GetAll lists questions matching searchTerm within category, 0 meaning every
// category. An out of range page falls back to the first page.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, searchTerm string, category int) (res dto.GetQuestionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".question.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.list(ctx, params, repository.FilterByListing(searchTerm, category), category)
}

func (s *serviceImpl) GetByCategory(ctx context.Context, params gDto.QueryParams, category int) (res dto.GetQuestionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".question.GetByCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exist, err := s.categoryExists(ctx, category)
	if err != nil {
		return res, err
	}

	if !exist {
		return res, failure.NotFound("category not found") // nolint:wrapcheck
	}

	return s.list(ctx, params, repository.FilterByCategory(category), category)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, category int) (res dto.GetQuestionsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count questions")

		return res, fmt.Errorf("failed to count questions: %w", err)
	}

	params = gDto.QueryParams{
		Page:  pagination.Clamp(params.Page, total, pagination.PageSize),
		Limit: pagination.PageSize,
	}

	questions, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get questions")

		return res, fmt.Errorf("failed to get questions: %w", err)
	}

	categories, err := s.categories.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	res.FromModels(questions, categoryDto.TypesByID(categories), category, total, params.Limit, params.Page)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.QuestionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".question.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	question, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int("question_id", id).Msg("failed to get question")

		return res, fmt.Errorf("failed to get question: %w", err)
	}

	if question.ID == 0 {
		return res, failure.NotFound(msgQuestionNotFound) // nolint:wrapcheck
	}

	res.FromModel(question)

	return res, nil
}

func (s *serviceImpl) exist(ctx context.Context, id int) error {
	exist, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if question exists")

		return fmt.Errorf("failed to check if question exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgQuestionNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.QuestionRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".question.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.exist(ctx, id); err != nil {
		return err
	}

	question := req.ToModel()

	if err = s.checkCategory(ctx, question.Category); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(question), filterByID(id)); err != nil {
		log.Error().Err(err).Int("question_id", id).Msg("failed to update question")

		return fmt.Errorf("failed to update question: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".question.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.exist(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filterByID(id)); err != nil {
		log.Error().Err(err).Int("question_id", id).Msg("failed to delete question")

		return fmt.Errorf("failed to delete question: %w", err)
	}

	return nil
}
