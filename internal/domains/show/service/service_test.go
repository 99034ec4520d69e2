package service_test

import (
	"context"
	"errors"
	"marquee/config"
	"marquee/infras/kafka"
	kafkaMocks "marquee/infras/kafka/mocks"
	"marquee/infras/otel/mocks"
	pgMocks "marquee/infras/postgres/mocks"
	artistMocks "marquee/internal/domains/artist/mocks"
	artistModel "marquee/internal/domains/artist/model"
	showMocks "marquee/internal/domains/show/mocks"
	"marquee/internal/domains/show/model"
	"marquee/internal/domains/show/model/dto"
	"marquee/internal/domains/show/repository"
	"marquee/internal/domains/show/service"
	venueMocks "marquee/internal/domains/venue/mocks"
	venueModel "marquee/internal/domains/venue/model"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"marquee/shared/timezone"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const topic = "marquee.shows"

var (
	startTime = time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	openVenue = venueModel.Venue{ID: 1, Name: "The Musical Hop", SeekingTalent: true}
	openAct   = artistModel.Artist{ID: 4, Name: "Guns N Petals", SeekingVenue: true}
)

type fixture struct {
	repo    *showMocks.MockShow
	venues  *venueMocks.MockVenue
	artists *artistMocks.MockArtist
	kafka   *kafkaMocks.MockClient
	svc     service.Show
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.Kafka.Topic = topic

	f := fixture{
		repo:    showMocks.NewMockShow(ctrl),
		venues:  venueMocks.NewMockVenue(ctrl),
		artists: artistMocks.NewMockArtist(ctrl),
		kafka:   kafkaMocks.NewMockClient(ctrl),
	}
	f.svc = service.New(f.repo, f.venues, f.artists, pgMocks.NewTransactor(), f.kafka, cfg, mocks.NewOtel())

	return f
}

func (f fixture) sides(venue venueModel.Venue, artist artistModel.Artist) {
	f.venues.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(venue, nil)
	f.artists.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(artist, nil)
}

func TestShowService_Create(t *testing.T) {
	req := dto.ShowRequest{VenueID: 1, ArtistID: 4, StartTime: startTime.In(time.FixedZone("PDT", -7*3600))}
	slot := repository.FilterBySlot(1, 4, startTime)

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful booking publishes an event",
			setupMock: func(f fixture) {
				f.sides(openVenue, openAct)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), slot).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), model.Show{VenueID: 1, ArtistID: 4, StartTime: startTime}).Return(nil)
				f.kafka.EXPECT().
					SendMessages(gomock.Any(), topic, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						require.Len(t, messages, 1)
						assert.Equal(t, "show:1", messages[0].Key)

						event, ok := messages[0].Value.(model.Event)
						require.True(t, ok)
						assert.Equal(t, model.EventShowBooked, event.Type)
						assert.Nil(t, event.NewStartTime)

						return nil
					})
			},
		},
		{
			name: "publish failure does not fail the booking",
			setupMock: func(f fixture) {
				f.sides(openVenue, openAct)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), slot).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(errors.New("broker unreachable"))
			},
		},
		{
			name: "missing venue",
			setupMock: func(f fixture) {
				f.sides(venueModel.Venue{}, openAct)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidReference,
		},
		{
			name: "missing artist takes precedence over availability",
			setupMock: func(f fixture) {
				f.sides(venueModel.Venue{ID: 1}, artistModel.Artist{})
			},
			wantErr:  true,
			wantKind: failure.KindInvalidReference,
		},
		{
			name: "venue not seeking talent",
			setupMock: func(f fixture) {
				f.sides(venueModel.Venue{ID: 1}, openAct)
			},
			wantErr:  true,
			wantKind: failure.KindNotAvailable,
		},
		{
			name: "artist not seeking a venue",
			setupMock: func(f fixture) {
				f.sides(openVenue, artistModel.Artist{ID: 4})
			},
			wantErr:  true,
			wantKind: failure.KindNotAvailable,
		},
		{
			name: "slot already booked",
			setupMock: func(f fixture) {
				f.sides(openVenue, openAct)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), slot).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "concurrent booking hits the unique key",
			setupMock: func(f fixture) {
				f.sides(openVenue, openAct)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), slot).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "storage failure",
			setupMock: func(f fixture) {
				f.venues.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(venueModel.Venue{}, errors.New("database error"))
			},
			wantErr:  true,
			wantKind: failure.KindStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(context.Background(), req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
		})
	}
}

func TestShowService_GetAll(t *testing.T) {
	require.NoError(t, timezone.SetLocation("UTC"))

	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(12, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 10, SortBy: "start_time,venue_id,artist_id"}, gDto.FilterGroup{}).
		Return([]model.Show{
			{VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals", StartTime: startTime},
			{VenueID: 3, VenueName: "Park Square", ArtistID: 5, ArtistName: "Matt Quevedo", StartTime: startTime},
		}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 2})
	require.NoError(t, err)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, 2, res.Page)
	require.Len(t, res.Shows, 2)
	assert.Equal(t, "2035-04-01T20:00:00Z", res.Shows[0].StartTime)
	assert.Equal(t, "Park Square", res.Shows[1].VenueName)
}

func TestShowService_Reschedule(t *testing.T) {
	newStart := startTime.Add(24 * time.Hour)
	req := dto.RescheduleShowRequest{VenueID: 1, ArtistID: 4, StartTime: startTime, NewStartTime: newStart}
	oldSlot := repository.FilterBySlot(1, 4, startTime)
	newSlot := repository.FilterBySlot(1, 4, newStart)

	t.Run("moves the show", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), oldSlot).Return(true, nil)
		f.sides(openVenue, openAct)
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), newSlot).Return(false, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), map[string]any{"start_time": newStart}, oldSlot).Return(nil)
		f.kafka.EXPECT().
			SendMessages(gomock.Any(), topic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				event := messages[0].Value.(model.Event)
				assert.Equal(t, model.EventShowRescheduled, event.Type)
				require.NotNil(t, event.NewStartTime)
				assert.True(t, newStart.Equal(*event.NewStartTime))

				return nil
			})

		assert.NoError(t, f.svc.Reschedule(context.Background(), req))
	})

	t.Run("unknown show", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), oldSlot).Return(false, nil)

		err := f.svc.Reschedule(context.Background(), req)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("artist stopped seeking", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), oldSlot).Return(true, nil)
		f.sides(openVenue, artistModel.Artist{ID: 4})

		err := f.svc.Reschedule(context.Background(), req)
		assert.True(t, failure.Is(err, failure.KindNotAvailable))
	})

	t.Run("target slot taken", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), oldSlot).Return(true, nil)
		f.sides(openVenue, openAct)
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), newSlot).Return(true, nil)

		err := f.svc.Reschedule(context.Background(), req)
		assert.True(t, failure.Is(err, failure.KindConflict))
	})

	t.Run("same time writes nothing", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), oldSlot).Return(true, nil)
		f.sides(openVenue, openAct)
		f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)

		same := req
		same.NewStartTime = startTime

		assert.NoError(t, f.svc.Reschedule(context.Background(), same))
	})
}

func TestShowService_Delete(t *testing.T) {
	req := dto.ShowRequest{VenueID: 1, ArtistID: 4, StartTime: startTime}
	slot := repository.FilterBySlot(1, 4, startTime)

	t.Run("cancels the show", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), slot).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), slot).Return(nil)
		f.kafka.EXPECT().
			SendMessages(gomock.Any(), topic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Equal(t, model.EventShowCancelled, messages[0].Value.(model.Event).Type)

				return nil
			})

		assert.NoError(t, f.svc.Delete(context.Background(), req))
	})

	t.Run("second cancel is not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), slot).Return(false, nil)

		assert.True(t, failure.Is(f.svc.Delete(context.Background(), req), failure.KindNotFound))
	})
}
