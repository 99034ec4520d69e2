package router

import (
	"marquee/internal/handlers/artist"
	"marquee/internal/handlers/category"
	"marquee/internal/handlers/genre"
	"marquee/internal/handlers/question"
	"marquee/internal/handlers/quiz"
	"marquee/internal/handlers/show"
	"marquee/internal/handlers/venue"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Genre    genre.Handler
	Venue    venue.Handler
	Artist   artist.Handler
	Show     show.Handler
	Category category.Handler
	Question question.Handler
	Quiz     quiz.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Genre.Router(routerGroup)
		r.DomainHandlers.Venue.Router(routerGroup)
		r.DomainHandlers.Artist.Router(routerGroup)
		r.DomainHandlers.Show.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.Question.Router(routerGroup)
		r.DomainHandlers.Quiz.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
