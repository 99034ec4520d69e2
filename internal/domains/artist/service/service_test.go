package service_test

import (
	"context"
	"errors"
	"marquee/infras/otel/mocks"
	pgMocks "marquee/infras/postgres/mocks"
	s3Mocks "marquee/infras/s3/mocks"
	artistMocks "marquee/internal/domains/artist/mocks"
	"marquee/internal/domains/artist/model"
	"marquee/internal/domains/artist/model/dto"
	"marquee/internal/domains/artist/service"
	genreDto "marquee/internal/domains/genre/model/dto"
	genreMocks "marquee/internal/domains/genre/service/mocks"
	showMocks "marquee/internal/domains/show/mocks"
	showModel "marquee/internal/domains/show/model"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*artistMocks.MockArtist, *showMocks.MockShow, *genreMocks.MockArtistGenres, *s3Mocks.MockS3, service.Artist) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := artistMocks.NewMockArtist(ctrl)
	shows := showMocks.NewMockShow(ctrl)
	genres := genreMocks.NewMockArtistGenres(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)

	return repo, shows, genres, storage, service.New(repo, shows, genres, pgMocks.NewTransactor(), storage, mocks.NewOtel())
}

func TestArtistService_Create(t *testing.T) {
	req := dto.ArtistRequest{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		SeekingVenue: true,
		Genres:       []int{7},
	}

	t.Run("successful creation", func(t *testing.T) {
		repo, _, genres, _, svc := setup(t)

		genres.EXPECT().Validate([]int{7}).Return([]int{7}, nil)
		repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), req.ToModel()).Return(4, nil)
		genres.EXPECT().SetTx(gomock.Any(), gomock.Any(), 4, []int{7}).Return(nil)

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 4, res.ID)
	})

	t.Run("genre link failure", func(t *testing.T) {
		repo, _, genres, _, svc := setup(t)

		genres.EXPECT().Validate(gomock.Any()).Return([]int{7}, nil)
		repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(4, nil)
		genres.EXPECT().SetTx(gomock.Any(), gomock.Any(), 4, gomock.Any()).Return(errors.New("database error"))

		res, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Zero(t, res.ID)
	})
}

func TestArtistService_GetAll(t *testing.T) {
	now := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)
	repo, shows, _, _, svc := setup(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 10}, gomock.Any()).
		Return([]model.Artist{{ID: 11, Name: "The Wild Sax Band"}}, nil)
	shows.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]showModel.Show{
			{ArtistID: 11, StartTime: now.Add(time.Hour)},
			{ArtistID: 11, StartTime: now.Add(2 * time.Hour)},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 2}, "", now)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, []dto.ArtistSummary{{ID: 11, Name: "The Wild Sax Band", NumUpcomingShows: 2}}, res.Artists)
}

func TestArtistService_Get(t *testing.T) {
	now := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		repo, _, _, _, svc := setup(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artist{}, nil)

		_, err := svc.Get(context.Background(), 404, now)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("shows carry venue details", func(t *testing.T) {
		repo, shows, genres, _, svc := setup(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artist{ID: 4, Name: "Guns N Petals"}, nil)
		genres.EXPECT().Get(gomock.Any(), 4).Return([]genreDto.GenreResponse{}, nil)
		shows.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]showModel.Show{{VenueID: 1, ArtistID: 4, VenueName: "The Musical Hop", StartTime: now.Add(-time.Minute)}}, nil)

		res, err := svc.Get(context.Background(), 4, now)
		require.NoError(t, err)

		require.Len(t, res.PastShows, 1)
		assert.Equal(t, "The Musical Hop", res.PastShows[0].VenueName)
		assert.Empty(t, res.UpcomingShows)
		assert.Equal(t, 0, res.UpcomingShowsCount)
	})
}

func TestArtistService_Delete(t *testing.T) {
	t.Run("missing artist", func(t *testing.T) {
		repo, _, _, _, svc := setup(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artist{}, nil)

		assert.True(t, failure.Is(svc.Delete(context.Background(), 4), failure.KindNotFound))
	})

	t.Run("failed show removal keeps the artist", func(t *testing.T) {
		repo, shows, _, _, svc := setup(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artist{ID: 4}, nil)
		shows.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		assert.Error(t, svc.Delete(context.Background(), 4))
	})
}

func TestArtistService_SetGenres(t *testing.T) {
	repo, _, _, _, svc := setup(t)
	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := svc.SetGenres(context.Background(), genreDto.SetGenresRequest{Genres: []int{1}}, 4)
	assert.True(t, failure.Is(err, failure.KindNotFound))
}
