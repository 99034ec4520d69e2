package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	"marquee/infras/s3"
	"marquee/internal/domains/artist/model"
	"marquee/internal/domains/artist/model/dto"
	"marquee/internal/domains/artist/repository"
	genreDto "marquee/internal/domains/genre/model/dto"
	genreService "marquee/internal/domains/genre/service"
	showModel "marquee/internal/domains/show/model"
	showRepo "marquee/internal/domains/show/repository"
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

type Artist interface {
	Create(ctx context.Context, req dto.ArtistRequest) (dto.CreateArtistResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, searchTerm string, now time.Time) (dto.GetArtistsResponse, error)
	Get(ctx context.Context, id int, now time.Time) (dto.ArtistResponse, error)
	Update(ctx context.Context, req dto.ArtistRequest, id int) error
	Delete(ctx context.Context, id int) error
	SetGenres(ctx context.Context, req genreDto.SetGenresRequest, id int) ([]genreDto.GenreResponse, error)
	UploadImage(ctx context.Context, req dto.UploadImageRequest, id int) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo       repository.Artist
	shows      showRepo.Show
	genres     genreService.ArtistGenres
	transactor postgres.Transactor
	s3         s3.S3
	otel       otel.Otel
}

func New(repo repository.Artist, shows showRepo.Show, genres genreService.ArtistGenres, transactor postgres.Transactor, s3 s3.S3, otel otel.Otel) Artist {
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

func (s *serviceImpl) Create(ctx context.Context, req dto.ArtistRequest) (res dto.CreateArtistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.Create")
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
		log.Error().Err(result.Err).Msg("failed to create artist")

		return dto.CreateArtistResponse{}, fmt.Errorf("failed to create artist: %w", result.Err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, searchTerm string, now time.Time) (res dto.GetArtistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.GetAll")
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
		log.Error().Err(err).Msg("failed to count artists")

		return res, fmt.Errorf("failed to count artists: %w", err)
	}

	params = gDto.QueryParams{
		Page:  pagination.Clamp(params.Page, total, pagination.PageSize),
		Limit: pagination.PageSize,
	}

	artists, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get artists")

		return res, fmt.Errorf("failed to get artists: %w", err)
	}

	upcoming, err := s.upcomingCounts(ctx, artists, now)
	if err != nil {
		return res, err
	}

	res.FromModels(artists, upcoming, total, params.Limit, params.Page)

	return res, nil
}

// upcomingCounts returns the number of upcoming shows of each artist, keyed by artist id.
func (s *serviceImpl) upcomingCounts(ctx context.Context, artists []model.Artist, now time.Time) (map[int]int, error) {
	counts := make(map[int]int, len(artists))
	if len(artists) == 0 {
		return counts, nil
	}

	ids := make([]int, len(artists))
	for i, artist := range artists {
		ids[i] = artist.ID
	}

	shows, err := s.shows.GetAll(ctx, gDto.QueryParams{}, showRepo.FilterByOwners(showModel.FieldArtistID, ids))
	if err != nil {
		log.Error().Err(err).Msg("failed to get artist shows")

		return nil, fmt.Errorf("failed to get artist shows: %w", err)
	}

	byArtist := make(map[int][]showModel.Show, len(artists))
	for _, show := range shows {
		byArtist[show.ArtistID] = append(byArtist[show.ArtistID], show)
	}

	for _, id := range ids {
		counts[id] = timeline.CountUpcoming(byArtist[id], now, showModel.StartOf)
	}

	return counts, nil
}

func (s *serviceImpl) get(ctx context.Context, id int) (model.Artist, error) {
	artist, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int("artist_id", id).Msg("failed to get artist")

		return artist, fmt.Errorf("failed to get artist: %w", err)
	}

	if artist.ID == 0 {
		return artist, failure.NotFound("artist not found") // nolint:wrapcheck
	}

	return artist, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int, now time.Time) (res dto.ArtistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	artist, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	genres, err := s.genres.Get(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	shows, err := s.shows.GetAll(ctx, gDto.QueryParams{SortBy: showModel.FieldStartTime + "," + showModel.FieldVenueID}, showRepo.FilterByOwners(showModel.FieldArtistID, []int{id}))
	if err != nil {
		log.Error().Err(err).Int("artist_id", id).Msg("failed to get artist shows")

		return res, fmt.Errorf("failed to get artist shows: %w", err)
	}

	past, upcoming := timeline.Partition(shows, now, showModel.StartOf)

	res.FromModel(artist, genres, past, upcoming)

	return res, nil
}

func (s *serviceImpl) exist(ctx context.Context, id int) error {
	exist, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if artist exists")

		return fmt.Errorf("failed to check if artist exists: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.ArtistRequest, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.Update")
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
		log.Error().Err(result.Err).Int("artist_id", id).Msg("failed to update artist")

		return fmt.Errorf("failed to update artist: %w", result.Err)
	}

	return nil
}

// Delete removes the artist together with its shows and genre links.
func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	artist, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	result := s.transactor.Run(ctx, func(tx *sqlx.Tx) error {
		if err := s.shows.DeleteTx(ctx, tx, showRepo.FilterByOwners(showModel.FieldArtistID, []int{id})); err != nil {
			return err
		}

		if err := s.genres.ClearTx(ctx, tx, id); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, filterByID(id))
	})
	if !result.Committed() {
		log.Error().Err(result.Err).Int("artist_id", id).Msg("failed to delete artist")

		return fmt.Errorf("failed to delete artist: %w", result.Err)
	}

	s.deleteImage(ctx, artist.ImageLink)

	return nil
}

func (s *serviceImpl) SetGenres(ctx context.Context, req genreDto.SetGenresRequest, id int) (res []genreDto.GenreResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.SetGenres")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.exist(ctx, id); err != nil {
		return nil, err
	}

	return s.genres.Set(ctx, id, req.Genres) //nolint:wrapcheck
}

// UploadImage stores the image under a fresh object name and points image_link at it.
// The previous image is removed once the artist no longer references it.
func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, id int) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	artist, err := s.get(ctx, id)
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
		log.Error().Err(err).Int("artist_id", id).Msg("failed to update artist image")

		s.deleteImage(ctx, url)

		return res, fmt.Errorf("failed to update artist image: %w", err)
	}

	s.deleteImage(ctx, artist.ImageLink)

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
