package genre

import (
	"marquee/infras/otel"
	"marquee/internal/domains/genre/model/dto"
	"marquee/internal/domains/genre/service"
	"marquee/shared/constant"
	"marquee/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	catalog *service.Catalog
	otel    otel.Otel
}

func New(catalog *service.Catalog, otel otel.Otel) Handler {
	return Handler{
		catalog: catalog,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/genres", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGenres)
	})
}

// GetGenres returns the genre catalog.
// @Summary Get all genres
// @Description Retrieve the genre reference catalog ordered by id.
// @Tags Genre
// @Produce json
// @Success 200 {array} dto.GenreResponse "List of genres"
// @Router /v1/genres [get]
func (handler *Handler) GetGenres(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGenres")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, dto.FromModels(handler.catalog.All()))
}
