package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/infras/s3"
	genreDto "marquee/internal/domains/genre/model/dto"
	genreService "marquee/internal/domains/genre/service"
	showModel "marquee/internal/domains/show/model"
	showRepo "marquee/internal/domains/show/repository"
	"marquee/internal/domains/venue/model"
	"marquee/internal/domains/venue/model/dto"
	"marquee/internal/domains/venue/repository"
	"marquee/shared"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"marquee/shared/pagination"
	"marquee/shared/timeline"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Venue interface {
	Create(ctx context.Context, req dto.VenueRequest) (dto.CreateVenueResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, searchTerm string, now time.Time) (dto.GetVenuesResponse, error)
	Areas(ctx context.Context, now time.Time) ([]dto.AreaResponse, error)
	Get(ctx context.Context, id int, now time.Time) (dto.VenueResponse, error)
	Update(ctx context.Context, req dto.VenueRequest, id int) error
	Delete(ctx context.Context, id int) error
	SetGenres(ctx context.Context, req genreDto.SetGenresRequest, id int) ([]genreDto.GenreResponse, error)
	UploadImage(ctx context.Context, req dto.UploadImageRequest, id int) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo       repository.Venue
	shows      showRepo.Show
	genres     genreService.VenueGenres
	transactor postgres.Transactor
	s3         s3.S3
	otel       otel.Otel
}

func New(repo repository.Venue, shows showRepo.Show, genres genreService.VenueGenres, transactor postgres.Transactor, s3 s3.S3, otel otel.Otel) Venue {
	return &serviceImpl{
		repo:       repo,
		shows:      shows,
		genres:     genres,
		transactor: transactor,
		s3:         s3,
		otel:       otel,
	}
}

func filterByID(id int) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.VenueRequest) (res dto.CreateVenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.genres.Validate(req.Genres); err != nil {
		return res, err
	}

	result := s.transactor.Run(ctx, func(tx *sqlx.Tx) error {
		id, err := s.repo.InsertReturningTx(ctx, tx, req.ToModel())
		if err != nil {
			return err
		}

		res.ID = id

		return s.genres.SetTx(ctx, tx, id, req.Genres)
	})
	if !result.Committed() {
		log.Error().Err(result.Err).Msg("failed to create venue")

		return dto.CreateVenueResponse{}, fmt.Errorf("failed to create venue: %w", result.Err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, searchTerm string, now time.Time) (res dto.GetVenuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if searchTerm != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldName,
			Value:    searchTerm,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count venues")

		return res, fmt.Errorf("failed to count venues: %w", err)
	}

	params = gDto.QueryParams{
		Page:  pagination.Clamp(params.Page, total, pagination.PageSize),
		Limit: pagination.PageSize,
	}

	venues, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venues")

		return res, fmt.Errorf("failed to get venues: %w", err)
	}

	upcoming, err := s.upcomingCounts(ctx, venues, now)
	if err != nil {
		return res, err
	}

	res.FromModels(venues, upcoming, total, params.Limit, params.Page)

	return res, nil
}

func (s *serviceImpl) Areas(ctx context.Context, now time.Time) (res []dto.AreaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Areas")
	defer scope.End()
	defer scope.TraceIfError(&err)

	params := gDto.QueryParams{SortBy: model.FieldState + "," + model.FieldCity}

	venues, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get venues")

		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	upcoming, err := s.upcomingCounts(ctx, venues, now)
	if err != nil {
		return nil, err
	}

	return dto.FromModels(venues, upcoming), nil
}

// upcomingCounts returns the number of upcoming shows of each venue, keyed by venue id.
func (s *serviceImpl) upcomingCounts(ctx context.Context, venues []model.Venue, now time.Time) (map[int]int, error) {
	counts := make(map[int]int, len(venues))
	if len(venues) == 0 {
		return counts, nil
	}

	ids := make([]int, len(venues))
	for i, venue := range venues {
		ids[i] = venue.ID
	}

	shows, err := s.shows.GetAll(ctx, gDto.QueryParams{}, showRepo.FilterByOwners(showModel.FieldVenueID, ids))
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue shows")

		return nil, fmt.Errorf("failed to get venue shows: %w", err)
	}

	byVenue := make(map[int][]showModel.Show, len(venues))
	for _, show := range shows {
		byVenue[show.VenueID] = append(byVenue[show.VenueID], show)
	}

	for _, id := range ids {
		counts[id] = timeline.CountUpcoming(byVenue[id], now, showModel.StartOf)
	}

	return counts, nil
}

func (s *serviceImpl) get(ctx context.Context, id int) (model.Venue, error) {
	venue, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int("venue_id", id).Msg("failed to get venue")

		return venue, fmt.Errorf("failed to get venue: %w", err)
	}

	if venue.ID == 0 {
		return venue, failure.NotFound("venue not found") // nolint:wrapcheck
	}

	return venue, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int, now time.Time) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	venue, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	genres, err := s.genres.Get(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	shows, err := s.shows.GetAll(ctx, gDto.QueryParams{SortBy: showModel.FieldStartTime + "," + showModel.FieldArtistID}, showRepo.FilterByOwners(showModel.FieldVenueID, []int{id}))
	if err != nil {
		log.Error().Err(err).Int("venue_id", id).Msg("failed to get venue shows")

		return res, fmt.Errorf("failed to get venue shows: %w", err)
	}

	past, upcoming := timeline.Partition(shows, now, showModel.StartOf)

	res.FromModel(venue, genres, past, upcoming)

	return res, nil
}

func (s *serviceImpl) exist(ctx context.Context, id int) error {
	exist, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !exist {
		return failure.NotFound("venue not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.VenueRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.exist(ctx, id); err != nil {
		return err
	}

	if _, err = s.genres.Validate(req.Genres); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req.ToModel())

	result := s.transactor.Run(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filterByID(id)); err != nil {
			return err
		}

		return s.genres.SetTx(ctx, tx, id, req.Genres)
	})
	if !result.Committed() {
		log.Error().Err(result.Err).Int("venue_id", id).Msg("failed to update venue")

		return fmt.Errorf("failed to update venue: %w", result.Err)
	}

	return nil
}

// Delete removes the venue together with its shows and genre links.
func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	venue, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	result := s.transactor.Run(ctx, func(tx *sqlx.Tx) error {
		if err := s.shows.DeleteTx(ctx, tx, showRepo.FilterByOwners(showModel.FieldVenueID, []int{id})); err != nil {
			return err
		}

		if err := s.genres.ClearTx(ctx, tx, id); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, filterByID(id))
	})
	if !result.Committed() {
		log.Error().Err(result.Err).Int("venue_id", id).Msg("failed to delete venue")

		return fmt.Errorf("failed to delete venue: %w", result.Err)
	}

	s.deleteImage(ctx, venue.ImageLink)

	return nil
}

func (s *serviceImpl) SetGenres(ctx context.Context, req genreDto.SetGenresRequest, id int) (res []genreDto.GenreResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.SetGenres")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.exist(ctx, id); err != nil {
		return nil, err
	}

	return s.genres.Set(ctx, id, req.Genres) //nolint:wrapcheck
}

// UploadImage stores the image under a fresh object name and points image_link at it.
// The previous image is removed once the venue no longer references it.
func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, id int) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	venue, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	fileName := uuid.NewString() + strings.ToLower(path.Ext(req.Image.Filename))

	url, err := s.s3.UploadFile(ctx, model.EntityName, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldImageLink: url}, filterByID(id)); err != nil {
		log.Error().Err(err).Int("venue_id", id).Msg("failed to update venue image")

		s.deleteImage(ctx, url)

		return res, fmt.Errorf("failed to update venue image: %w", err)
	}

	s.deleteImage(ctx, venue.ImageLink)

	res.URL = url

	return res, nil
}

// deleteImage removes an uploaded image. Links that do not point into the bucket are
// left alone, and a failed removal is only logged.
func (s *serviceImpl) deleteImage(ctx context.Context, url string) {
	objectKey := s.s3.GetObjectNameFromURL(url)
	if objectKey == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Error().Err(err).Str("object_key", objectKey).Msg("failed to delete image from S3")
	}
}
