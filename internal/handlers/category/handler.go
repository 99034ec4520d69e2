package category

import (
	"marquee/infras/otel"
	"marquee/internal/domains/category/model"
	"marquee/internal/domains/category/model/dto"
	"marquee/internal/domains/category/service"
	questionDto "marquee/internal/domains/question/model/dto"
	questionService "marquee/internal/domains/question/service"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/validator"
	"marquee/transport/http/request"
	"marquee/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Category
	questions questionService.Question
	otel      otel.Otel
}

func New(service service.Category, questions questionService.Question, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		questions: questions,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/categories", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCategories)
		routerGroup.Post("/", handler.CreateCategory)
		routerGroup.Get("/{id}", handler.GetCategoryByID)
		routerGroup.Put("/{id}", handler.UpdateCategory)
		routerGroup.Delete("/{id}", handler.DeleteCategory)
		routerGroup.Get("/{id}/questions", handler.GetCategoryQuestions)
	})
}

// GetCategories returns every trivia category.
// @Summary Get all categories
// @Tags Category
// @Produce json
// @Success 200 {array} dto.CategoryResponse "List of categories"
// @Failure 500 {object} response.Error
// @Router /v1/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	categories, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, categories)
}

// CreateCategory adds a trivia category.
// @Summary Create a category
// @Tags Category
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Create Category Request"
// @Success 201 {object} dto.CreateCategoryResponse "Category created successfully"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories [post]
func (handler *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CategoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Get a category by ID
// @Tags Category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [get]
func (handler *Handler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryByID")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	category, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("category_id", id).Msg("failed to get category by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, category)
}

// @Summary Rename a category
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.CategoryRequest true "Update Category Request"
// @Success 200 {object} response.Message "Category updated successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [put]
func (handler *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CategoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("category_id", id).Msg("failed to update category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category updated successfully")

	response.WithMessage(w, http.StatusOK, "Category updated successfully")
}

// DeleteCategory removes a category together with its questions.
// @Summary Delete a category by ID
// @Tags Category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response.Message "Category deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [delete]
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("category_id", id).Msg("failed to delete category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category deleted successfully")

	response.WithMessage(w, http.StatusOK, "Category deleted successfully")
}

// GetCategoryQuestions lists the questions of one category.
// @Summary Get questions by category
// @Tags Category
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number"
// @Success 200 {object} questionDto.GetQuestionsResponse "Questions of the category"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id}/questions [get]
func (handler *Handler) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryQuestions")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	var questions questionDto.GetQuestionsResponse

	questions, err = handler.questions.GetByCategory(ctx, queryParams, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("category_id", id).Msg("failed to get category questions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, questions)
}
