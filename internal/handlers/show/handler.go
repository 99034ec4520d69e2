package show

import (
	"marquee/infras/otel"
	"marquee/internal/domains/show/model/dto"
	"marquee/internal/domains/show/service"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/validator"
	"marquee/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Show
	otel    otel.Otel
}

func New(service service.Show, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the show routes. A show has no id of its own, so update and delete
// name it by venue, artist and start time in the body.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/shows", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetShows)
		routerGroup.Post("/", handler.CreateShow)
		routerGroup.Put("/", handler.RescheduleShow)
		routerGroup.Delete("/", handler.DeleteShow)
	})
}

// CreateShow books an artist at a venue.
// @Summary Book a show
// @Description Book a show when the venue is seeking talent and the artist is seeking a venue.
// @Tags Show
// @Accept json
// @Produce json
// @Param request body dto.ShowRequest true "Show"
// @Success 201 {object} response.Message "Show booked successfully"
// @Failure 400 {object} response.Error "Unknown venue or artist"
// @Failure 409 {object} response.Error "Not available or slot taken"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows [post]
func (handler *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateShow")
	defer scope.End()

	req := dto.ShowRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book show")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Show booked successfully")

	response.WithMessage(w, http.StatusCreated, "Show booked successfully")
}

// GetShows lists shows ordered by start time.
// @Summary Get shows
// @Tags Show
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} dto.GetShowsResponse "List of shows"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows [get]
func (handler *Handler) GetShows(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShows")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	shows, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shows")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, shows)
}

// RescheduleShow moves a show to a new start time.
// @Summary Reschedule a show
// @Tags Show
// @Accept json
// @Produce json
// @Param request body dto.RescheduleShowRequest true "Show and its new start time"
// @Success 200 {object} response.Message "Show rescheduled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows [put]
func (handler *Handler) RescheduleShow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleShow")
	defer scope.End()

	req := dto.RescheduleShowRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reschedule(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule show")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Show rescheduled successfully")

	response.WithMessage(w, http.StatusOK, "Show rescheduled successfully")
}

// DeleteShow cancels a show.
// @Summary Cancel a show
// @Tags Show
// @Accept json
// @Produce json
// @Param request body dto.ShowRequest true "Show"
// @Success 200 {object} response.Message "Show cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows [delete]
func (handler *Handler) DeleteShow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteShow")
	defer scope.End()

	req := dto.ShowRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel show")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Show cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Show cancelled successfully")
}
