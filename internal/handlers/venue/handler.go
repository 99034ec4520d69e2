package venue

import (
	"marquee/infras/otel"
	genreDto "marquee/internal/domains/genre/model/dto"
	"marquee/internal/domains/venue/model"
	"marquee/internal/domains/venue/model/dto"
	"marquee/internal/domains/venue/service"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/timezone"
	"marquee/shared/validator"
	"marquee/transport/http/request"
	"marquee/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Venue
	otel    otel.Otel
}

func New(service service.Venue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/venues", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetVenues)
		routerGroup.Post("/", handler.CreateVenue)
		routerGroup.Get("/areas", handler.GetAreas)
		routerGroup.Get("/{id}", handler.GetVenueByID)
		routerGroup.Put("/{id}", handler.UpdateVenue)
		routerGroup.Delete("/{id}", handler.DeleteVenue)
		routerGroup.Put("/{id}/genres", handler.SetGenres)
		routerGroup.Put("/{id}/image", handler.UploadImage)
	})
}

// CreateVenue handles the creation of a new venue.
// @Summary Create a new venue
// @Description Create a venue together with its genre set.
// @Tags Venue
// @Accept json
// @Produce json
// @Param request body dto.VenueRequest true "Create Venue Request"
// @Success 201 {object} dto.CreateVenueResponse "Venue created successfully"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues [post]
func (handler *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVenue")
	defer scope.End()

	req := dto.VenueRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create venue")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetVenues lists venues a page at a time.
// @Summary Get venues
// @Description Retrieve venues matching an optional case-insensitive name search.
// @Tags Venue
// @Produce json
// @Param search_term query string false "Substring of the venue name"
// @Param page query int false "Page number, out of range pages fall back to 1"
// @Success 200 {object} dto.GetVenuesResponse "List of venues"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues [get]
func (handler *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenues")
	defer scope.End()

	now := timezone.Now()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	venues, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(constant.RequestParamSearchTerm), now)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venues")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, venues)
}

// GetAreas lists every venue grouped by city and state.
// @Summary Get venue areas
// @Tags Venue
// @Produce json
// @Success 200 {array} dto.AreaResponse "Venues grouped by area"
// @Failure 500 {object} response.Error
// @Router /v1/venues/areas [get]
func (handler *Handler) GetAreas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAreas")
	defer scope.End()

	areas, err := handler.service.Areas(ctx, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venue areas")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, areas)
}

// GetVenueByID retrieves a venue with its genres and shows.
// @Summary Get a venue by ID
// @Tags Venue
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} dto.VenueResponse "Venue details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id} [get]
func (handler *Handler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueByID")
	defer scope.End()

	now := timezone.Now()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	venue, err := handler.service.Get(ctx, id, now)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("venue_id", id).Msg("failed to get venue by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, venue)
}

// UpdateVenue replaces every field of a venue, including its genres.
// @Summary Update a venue by ID
// @Tags Venue
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param request body dto.VenueRequest true "Update Venue Request"
// @Success 200 {object} response.Message "Venue updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id} [put]
func (handler *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVenue")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.VenueRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("venue_id", id).Msg("failed to update venue")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue updated successfully")

	response.WithMessage(w, http.StatusOK, "Venue updated successfully")
}

// DeleteVenue deletes a venue with its shows and genre links.
// @Summary Delete a venue by ID
// @Tags Venue
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} response.Message "Venue deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id} [delete]
func (handler *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVenue")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("venue_id", id).Msg("failed to delete venue")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue deleted successfully")

	response.WithMessage(w, http.StatusOK, "Venue deleted successfully")
}

// SetGenres replaces the genre set of a venue.
// @Summary Set venue genres
// @Tags Venue
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param request body genreDto.SetGenresRequest true "Genre ids"
// @Success 200 {array} genreDto.GenreResponse "Stored genre set"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id}/genres [put]
func (handler *Handler) SetGenres(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetVenueGenres")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := genreDto.SetGenresRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	genres, err := handler.service.SetGenres(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("venue_id", id).Msg("failed to set venue genres")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, genres)
}

// UploadImage stores a venue image and points image_link at it.
// @Summary Upload a venue image
// @Tags Venue
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Venue ID"
// @Param file formData file true "PNG or JPEG image, at most 5 MB"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id}/image [put]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadVenueImage")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	file, fileHeader, err := request.FormFile(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}

	if file != nil {
		defer file.Close()
	}

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("venue_id", id).Msg("failed to upload venue image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Venue image uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
