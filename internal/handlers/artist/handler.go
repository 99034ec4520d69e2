package artist

import (
	"marquee/infras/otel"
	"marquee/internal/domains/artist/model"
	"marquee/internal/domains/artist/model/dto"
	"marquee/internal/domains/artist/service"
	genreDto "marquee/internal/domains/genre/model/dto"
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
	service service.Artist
	otel    otel.Otel
}

func New(service service.Artist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/artists", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetArtists)
		routerGroup.Post("/", handler.CreateArtist)
		routerGroup.Get("/{id}", handler.GetArtistByID)
		routerGroup.Put("/{id}", handler.UpdateArtist)
		routerGroup.Delete("/{id}", handler.DeleteArtist)
		routerGroup.Put("/{id}/genres", handler.SetGenres)
		routerGroup.Put("/{id}/image", handler.UploadImage)
	})
}

// CreateArtist handles the creation of a new artist.
// @Summary Create a new artist
// @Description Create an artist together with its genre set.
// @Tags Artist
// @Accept json
// @Produce json
// @Param request body dto.ArtistRequest true "Create Artist Request"
// @Success 201 {object} dto.CreateArtistResponse "Artist created successfully"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists [post]
func (handler *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArtist")
	defer scope.End()

	req := dto.ArtistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create artist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetArtists lists artists a page at a time.
// @Summary Get artists
// @Description Retrieve artists matching an optional case-insensitive name search.
// @Tags Artist
// @Produce json
// @Param search_term query string false "Substring of the artist name"
// @Param page query int false "Page number, out of range pages fall back to 1"
// @Success 200 {object} dto.GetArtistsResponse "List of artists"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists [get]
func (handler *Handler) GetArtists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtists")
	defer scope.End()

	now := timezone.Now()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	artists, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(constant.RequestParamSearchTerm), now)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artists")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, artists)
}

// GetArtistByID retrieves an artist with its genres and shows.
// @Summary Get an artist by ID
// @Tags Artist
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} dto.ArtistResponse "Artist details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [get]
func (handler *Handler) GetArtistByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtistByID")
	defer scope.End()

	now := timezone.Now()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	artist, err := handler.service.Get(ctx, id, now)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("artist_id", id).Msg("failed to get artist by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, artist)
}

// UpdateArtist replaces every field of an artist, including its genres.
// @Summary Update an artist by ID
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param request body dto.ArtistRequest true "Update Artist Request"
// @Success 200 {object} response.Message "Artist updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [put]
func (handler *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArtist")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.ArtistRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("artist_id", id).Msg("failed to update artist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist updated successfully")

	response.WithMessage(w, http.StatusOK, "Artist updated successfully")
}

// DeleteArtist deletes an artist with its shows and genre links.
// @Summary Delete an artist by ID
// @Tags Artist
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} response.Message "Artist deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id} [delete]
func (handler *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArtist")
	defer scope.End()

	id, err := request.ID(r, model.EntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("artist_id", id).Msg("failed to delete artist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist deleted successfully")

	response.WithMessage(w, http.StatusOK, "Artist deleted successfully")
}

// SetGenres replaces the genre set of an artist.
// @Summary Set artist genres
// @Tags Artist
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param request body genreDto.SetGenresRequest true "Genre ids"
// @Success 200 {array} genreDto.GenreResponse "Stored genre set"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id}/genres [put]
func (handler *Handler) SetGenres(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetArtistGenres")
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
		log.Error().Err(err).Int("artist_id", id).Msg("failed to set artist genres")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, genres)
}

// UploadImage stores an artist image and points image_link at it.
// @Summary Upload an artist image
// @Tags Artist
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Artist ID"
// @Param file formData file true "PNG or JPEG image, at most 5 MB"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/artists/{id}/image [put]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadArtistImage")
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
		log.Error().Err(err).Int("artist_id", id).Msg("failed to upload artist image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artist image uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
