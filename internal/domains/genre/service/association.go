package service

//go:generate go run go.uber.org/mock/mockgen -source=./association.go -destination=./mocks/association_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/internal/domains/genre/model"
	"marquee/internal/domains/genre/model/dto"
	"marquee/internal/domains/genre/repository"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Genres manages the genre set of one kind of owner. A set is always replaced as a
// whole, and reads come back ordered by genre id.
type Genres interface {
	Validate(genreIDs []int) ([]int, error)
	Set(ctx context.Context, ownerID int, genreIDs []int) ([]dto.GenreResponse, error)
	SetTx(ctx context.Context, sqltx *sqlx.Tx, ownerID int, genreIDs []int) error
	ClearTx(ctx context.Context, sqltx *sqlx.Tx, ownerID int) error
	Get(ctx context.Context, ownerID int) ([]dto.GenreResponse, error)
}

type VenueGenres interface {
	Genres
}

type ArtistGenres interface {
	Genres
}

type linkStore[L any] interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]L, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []L) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type association[L any] struct {
	catalog    *Catalog
	repo       linkStore[L]
	transactor postgres.Transactor
	otel       otel.Otel
	entity     string
	table      string
	ownerField string
	link       func(ownerID, genreID int) L
	genre      func(L) model.Genre
}

func NewVenueGenres(repo repository.VenueGenre, catalog *Catalog, transactor postgres.Transactor, otel otel.Otel) VenueGenres {
	return &association[model.VenueGenre]{
		catalog:    catalog,
		repo:       repo,
		transactor: transactor,
		otel:       otel,
		entity:     "venue",
		table:      model.VenueGenreTableName,
		ownerField: model.FieldVenueID,
		link: func(ownerID, genreID int) model.VenueGenre {
			return model.VenueGenre{VenueID: ownerID, GenreID: genreID}
		},
		genre: func(l model.VenueGenre) model.Genre {
			return model.Genre{ID: l.GenreID, Description: l.Description}
		},
	}
}

func NewArtistGenres(repo repository.ArtistGenre, catalog *Catalog, transactor postgres.Transactor, otel otel.Otel) ArtistGenres {
	return &association[model.ArtistGenre]{
		catalog:    catalog,
		repo:       repo,
		transactor: transactor,
		otel:       otel,
		entity:     "artist",
		table:      model.ArtistGenreTableName,
		ownerField: model.FieldArtistID,
		link: func(ownerID, genreID int) model.ArtistGenre {
			return model.ArtistGenre{ArtistID: ownerID, GenreID: genreID}
		},
		genre: func(l model.ArtistGenre) model.Genre {
			return model.Genre{ID: l.GenreID, Description: l.Description}
		},
	}
}

func (a *association[L]) ownerFilter(ownerID int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    a.ownerField,
				Value:    ownerID,
				Operator: gDto.FilterOperatorEq,
				Table:    a.table,
			},
		},
	}
}

func (a *association[L]) Validate(genreIDs []int) ([]int, error) {
	return a.catalog.Validate(genreIDs)
}

// Set replaces the genre set in its own transaction. Nothing is written when any id
// is unknown.
func (a *association[L]) Set(ctx context.Context, ownerID int, genreIDs []int) (res []dto.GenreResponse, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+a.entity+"Genres.Set")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ids, err := a.catalog.Validate(genreIDs)
	if err != nil {
		return nil, err
	}

	result := a.transactor.Run(ctx, func(tx *sqlx.Tx) error {
		return a.replace(ctx, tx, ownerID, ids)
	})
	if !result.Committed() {
		log.Error().Err(result.Err).Int(a.ownerField, ownerID).Msg("failed to replace genres")

		return nil, fmt.Errorf("failed to replace %s genres: %w", a.entity, result.Err)
	}

	return a.Get(ctx, ownerID)
}

// SetTx replaces the genre set inside a transaction owned by the caller.
func (a *association[L]) SetTx(ctx context.Context, sqltx *sqlx.Tx, ownerID int, genreIDs []int) (err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+a.entity+"Genres.SetTx")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ids, err := a.catalog.Validate(genreIDs)
	if err != nil {
		return err
	}

	return a.replace(ctx, sqltx, ownerID, ids)
}

func (a *association[L]) replace(ctx context.Context, sqltx *sqlx.Tx, ownerID int, ids []int) error {
	if err := a.repo.DeleteTx(ctx, sqltx, a.ownerFilter(ownerID)); err != nil {
		return fmt.Errorf("failed to clear %s genres: %w", a.entity, err)
	}

	links := make([]L, len(ids))
	for i, id := range ids {
		links[i] = a.link(ownerID, id)
	}

	if err := a.repo.InsertBulkTx(ctx, sqltx, links); err != nil {
		return fmt.Errorf("failed to insert %s genres: %w", a.entity, err)
	}

	return nil
}

func (a *association[L]) ClearTx(ctx context.Context, sqltx *sqlx.Tx, ownerID int) (err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+a.entity+"Genres.ClearTx")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = a.repo.DeleteTx(ctx, sqltx, a.ownerFilter(ownerID)); err != nil {
		return fmt.Errorf("failed to clear %s genres: %w", a.entity, err)
	}

	return nil
}

func (a *association[L]) Get(ctx context.Context, ownerID int) (res []dto.GenreResponse, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+a.entity+"Genres.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	links, err := a.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldGenreID}, a.ownerFilter(ownerID))
	if err != nil {
		log.Error().Err(err).Int(a.ownerField, ownerID).Msg("failed to get genres")

		return nil, fmt.Errorf("failed to get %s genres: %w", a.entity, err)
	}

	genres := make([]model.Genre, len(links))
	for i, l := range links {
		genres[i] = a.genre(l)
	}

	return dto.FromModels(genres), nil
}
