//go:build wireinject
// +build wireinject

package di

import (
	"marquee/config"
	"marquee/infras/kafka"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/infras/redis"
	"marquee/infras/s3"
	"marquee/shared/cache"
	"marquee/transport/http"
	"marquee/transport/http/middleware"
	"marquee/transport/http/router"

	artistRepository "marquee/internal/domains/artist/repository"
	artistService "marquee/internal/domains/artist/service"
	categoryService "marquee/internal/domains/category/service"
	genreRepository "marquee/internal/domains/genre/repository"
	genreService "marquee/internal/domains/genre/service"
	questionRepository "marquee/internal/domains/question/repository"
	questionService "marquee/internal/domains/question/service"
	quizService "marquee/internal/domains/quiz/service"
	showRepository "marquee/internal/domains/show/repository"
	showService "marquee/internal/domains/show/service"
	venueRepository "marquee/internal/domains/venue/repository"
	venueService "marquee/internal/domains/venue/service"

	artistHandler "marquee/internal/handlers/artist"
	categoryHandler "marquee/internal/handlers/category"
	genreHandler "marquee/internal/handlers/genre"
	questionHandler "marquee/internal/handlers/question"
	quizHandler "marquee/internal/handlers/quiz"
	showHandler "marquee/internal/handlers/show"
	venueHandler "marquee/internal/handlers/venue"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	provideClosers,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var genreDomain = wire.NewSet(
	genreRepository.New,
	genreRepository.NewVenueGenre,
	genreRepository.NewArtistGenre,
	genreService.Load,
	genreService.NewVenueGenres,
	genreService.NewArtistGenres,
)

var bookingDomain = wire.NewSet(
	venueRepository.New,
	venueService.New,
	artistRepository.New,
	artistService.New,
	showRepository.New,
	showService.New,
)

var triviaDomain = wire.NewSet(
	provideCategoryRepository,
	categoryService.New,
	questionRepository.New,
	questionService.New,
	quizService.New,
)

var domains = wire.NewSet(
	genreDomain,
	bookingDomain,
	triviaDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	genreHandler.New,
	venueHandler.New,
	artistHandler.New,
	showHandler.New,
	categoryHandler.New,
	questionHandler.New,
	quizHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
