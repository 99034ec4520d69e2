package quiz

import (
	"marquee/infras/otel"
	"marquee/internal/domains/quiz/dto"
	"marquee/internal/domains/quiz/service"
	"marquee/shared/constant"
	"marquee/shared/validator"
	"marquee/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Quiz
	otel    otel.Otel
}

func New(service service.Quiz, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/quizzes", handler.NextQuestion)
}

// NextQuestion draws the next quiz question.
// @Summary Play a quiz round
// @Description Return a random question the player has not seen, or null once the pool is exhausted. Category -1 draws from every category.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Previous question ids and category"
// @Success 200 {object} dto.QuizResponse "Next question"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quizzes [post]
func (handler *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NextQuestion")
	defer scope.End()

	req := dto.QuizRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Next(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to draw quiz question")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
