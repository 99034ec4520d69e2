package question

import (
	"marquee/infras/otel"
	"marquee/internal/domains/question/model"
	"marquee/internal/domains/question/model/dto"
	"marquee/internal/domains/question/service"
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
	service service.Question
	otel    otel.Otel
}

func New(service service.Question, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/questions", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetQuestions)
		routerGroup.Post("/", handler.CreateQuestion)
		routerGroup.Get("/{id}", handler.GetQuestionByID)
		routerGroup.Put("/{id}", handler.UpdateQuestion)
		routerGroup.Delete("/{id}", handler.DeleteQuestion)
	})
}

// GetQuestions lists questions ten per page.
// @Summary Get questions
// @Description Retrieve questions matching an optional case-insensitive search, optionally within one category.
// @Tags Question
// @Produce json
// @Param search_term query string false "Substring of the question text"
// @Param current_category query string false "Category id, null or empty for every category"
// @Param page query int false "Page number, out of range pages fall back to 1"
// @Success 200 {object} dto.GetQuestionsResponse "List of questions"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/questions [get]
func (handler *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuestions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	category, err := dto.CategoryFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	questions, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(constant.RequestParamSearchTerm), category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get questions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, questions)
}

// CreateQuestion adds a trivia question.
// @Summary Create a question
// @Description Category and difficulty accept JSON numbers or numeric strings.
// @Tags Question
// @Accept json
// @Produce json
// @Param request body dto.QuestionRequest true "Create Question Request"
// @Success 201 {object} dto.CreateQuestionResponse "Question created successfully"
// @Failure 400 {object} response.Error "Unknown category"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/questions [post]
func (handler *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuestion")
	defer scope.End()

	req := dto.QuestionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create question")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Question created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Get a question by ID
// @Tags Question
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/questions/{id} [get]
func (handler *Handler) GetQuestionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuestionByID")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	question, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("question_id", id).Msg("failed to get question by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, question)
}

// @Summary Update a question by ID
// @Tags Question
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.QuestionRequest true "Update Question Request"
// @Success 200 {object} response.Message "Question updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/questions/{id} [put]
func (handler *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateQuestion")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.QuestionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("question_id", id).Msg("failed to update question")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Question updated successfully")

	response.WithMessage(w, http.StatusOK, "Question updated successfully")
}

// @Summary Delete a question by ID
// @Tags Question
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} response.Message "Question deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/questions/{id} [delete]
func (handler *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteQuestion")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("question_id", id).Msg("failed to delete question")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Question deleted successfully")

	response.WithMessage(w, http.StatusOK, "Question deleted successfully")
}
