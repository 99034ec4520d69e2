package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"marquee/config"
	"marquee/infras/kafka"
	"marquee/infras/otel"
	"marquee/infras/postgres"
	artistModel "marquee/internal/domains/artist/model"
	artistRepo "marquee/internal/domains/artist/repository"
	"marquee/internal/domains/show/model"
	"marquee/internal/domains/show/model/dto"
	"marquee/internal/domains/show/repository"
	"marquee/internal/domains/show/rule"
	venueModel "marquee/internal/domains/venue/model"
	venueRepo "marquee/internal/domains/venue/repository"
	"marquee/shared"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"marquee/shared/pagination"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidReference = "Invalid artist or venue ID"
	msgNotAvailable     = "The artist or venue is not available"
	msgSlotTaken        = "The artist is already booked at this venue at that time"
	msgShowNotFound     = "show not found"
)

var showOrder = gDto.QueryParams{SortBy: model.FieldStartTime + "," + model.FieldVenueID + "," + model.FieldArtistID}

type Show interface {
	Create(ctx context.Context, req dto.ShowRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetShowsResponse, error)
	Reschedule(ctx context.Context, req dto.RescheduleShowRequest) error
	Delete(ctx context.Context, req dto.ShowRequest) error
}

type serviceImpl struct {
	repo       repository.Show
	venues     venueRepo.Venue
	artists    artistRepo.Artist
	transactor postgres.Transactor
	kafka      kafka.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Show, venues venueRepo.Venue, artists artistRepo.Artist, transactor postgres.Transactor, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Show {
	return &serviceImpl{
		repo:       repo,
		venues:     venues,
		artists:    artists,
		transactor: transactor,
		kafka:      kafka,
		cfg:        cfg,
		otel:       otel,
	}
}

// Create books a show. The venue and artist are read, checked and the show written
// in one transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.ShowRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".show.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	show := req.ToModel()

	result := s.transactor.Run(ctx, func(tx *sqlx.Tx) error {
		if err := s.checkBookable(ctx, tx, show.VenueID, show.ArtistID); err != nil {
			return err
		}

		if err := s.checkSlotFree(ctx, tx, show.VenueID, show.ArtistID, show.StartTime); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, show); err != nil {
			return slotConflict(err)
		}

		return nil
	})
	if !result.Committed() {
		log.Error().Err(result.Err).Int("venue_id", show.VenueID).Int("artist_id", show.ArtistID).Msg("failed to book show")

		return fmt.Errorf("failed to book show: %w", result.Err)
	}

	s.publish(ctx, model.Event{
		Type:      model.EventShowBooked,
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime,
	})

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetShowsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".show.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count shows")

		return res, fmt.Errorf("failed to count shows: %w", err)
	}

	page := pagination.Clamp(params.Page, total, pagination.PageSize)

	params = showOrder
	params.Page = page
	params.Limit = pagination.PageSize

	shows, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get shows")

		return res, fmt.Errorf("failed to get shows: %w", err)
	}

	res.FromModels(shows, total, params.Limit, params.Page)

	return res, nil
}

// Reschedule moves a show to a new start time. Availability is checked again, since
// either side may have stopped seeking since the show was booked.
func (s *serviceImpl) Reschedule(ctx context.Context, req dto.RescheduleShowRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".show.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(&err)

	current := req.Show()
	show := current.ToModel()
	newStartTime := req.NewStartTime.UTC()

	result := s.transactor.Run(ctx, func(tx *sqlx.Tx) error {
		filter := repository.FilterBySlot(show.VenueID, show.ArtistID, show.StartTime)

		exist, err := s.repo.ExistTx(ctx, tx, filter)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !exist {
			return failure.NotFound(msgShowNotFound) // nolint:wrapcheck
		}

		if err := s.checkBookable(ctx, tx, show.VenueID, show.ArtistID); err != nil {
			return err
		}

		if newStartTime.Equal(show.StartTime) {
			return nil
		}

		if err := s.checkSlotFree(ctx, tx, show.VenueID, show.ArtistID, newStartTime); err != nil {
			return err
		}

		if err := s.repo.UpdateTx(ctx, tx, map[string]any{model.FieldStartTime: newStartTime}, filter); err != nil {
			return slotConflict(err)
		}

		return nil
	})
	if !result.Committed() {
		log.Error().Err(result.Err).Int("venue_id", show.VenueID).Int("artist_id", show.ArtistID).Msg("failed to reschedule show")

		return fmt.Errorf("failed to reschedule show: %w", result.Err)
	}

	s.publish(ctx, model.Event{
		Type:         model.EventShowRescheduled,
		VenueID:      show.VenueID,
		ArtistID:     show.ArtistID,
		StartTime:    show.StartTime,
		NewStartTime: &newStartTime,
	})

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.ShowRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".show.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	show := req.ToModel()
	filter := repository.FilterBySlot(show.VenueID, show.ArtistID, show.StartTime)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if show exists")

		return fmt.Errorf("failed to check if show exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgShowNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete show")

		return fmt.Errorf("failed to delete show: %w", err)
	}

	s.publish(ctx, model.Event{
		Type:      model.EventShowCancelled,
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime,
	})

	return nil
}

// checkBookable resolves both sides of a booking. A missing venue or artist is an
// InvalidReference; two existing sides that are not both seeking are NotAvailable.
func (s *serviceImpl) checkBookable(ctx context.Context, tx *sqlx.Tx, venueID, artistID int) error {
	venue, err := s.venues.GetTx(ctx, tx, shared.FilterByID(venueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		return err //nolint:wrapcheck
	}

	artist, err := s.artists.GetTx(ctx, tx, shared.FilterByID(artistID, artistModel.FieldID, artistModel.TableName))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if venue.ID == 0 || artist.ID == 0 {
		return failure.InvalidReference(msgInvalidReference) // nolint:wrapcheck
	}

	if !rule.CanBook(artist, venue) {
		return failure.NotAvailable(msgNotAvailable) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) checkSlotFree(ctx context.Context, tx *sqlx.Tx, venueID, artistID int, startTime time.Time) error {
	taken, err := s.repo.ExistTx(ctx, tx, repository.FilterBySlot(venueID, artistID, startTime))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if taken {
		return failure.Conflict(msgSlotTaken) // nolint:wrapcheck
	}

	return nil
}

// slotConflict maps a unique violation raised by a concurrent booking of the same
// slot to a Conflict failure.
func slotConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
		return failure.Conflict(msgSlotTaken) // nolint:wrapcheck
	}

	return err
}

// publish sends a show event once its write is committed. Delivery is best effort;
// a failure is logged and never undoes the write.
func (s *serviceImpl) publish(ctx context.Context, event model.Event) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+event.Type)
	defer scope.End()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, kafka.Message{Key: event.Key(), Value: event})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", event.Type).Msg("failed to publish show event")
	}
}
