package dto

import (
	"marquee/internal/domains/show/model"
	"marquee/shared"
	"marquee/shared/constant"
	"marquee/shared/timezone"
	"time"
)

// ShowRequest names one show by its identity. It is the body for booking and cancelling.
type ShowRequest struct {
	VenueID   int       `json:"venue_id"   validate:"required,gt=0"`
	ArtistID  int       `json:"artist_id"  validate:"required,gt=0"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

func (r *ShowRequest) ToModel() model.Show {
	return model.Show{
		VenueID:   r.VenueID,
		ArtistID:  r.ArtistID,
		StartTime: r.StartTime.UTC(),
	}
}

type RescheduleShowRequest struct {
	VenueID      int       `json:"venue_id"       validate:"required,gt=0"`
	ArtistID     int       `json:"artist_id"      validate:"required,gt=0"`
	StartTime    time.Time `json:"start_time"     validate:"required"`
	NewStartTime time.Time `json:"new_start_time" validate:"required"`
}

func (r *RescheduleShowRequest) Show() ShowRequest {
	return ShowRequest{VenueID: r.VenueID, ArtistID: r.ArtistID, StartTime: r.StartTime}
}

type ShowResponse struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func (r *ShowResponse) FromModel(show model.Show) {
	r.VenueID = show.VenueID
	r.VenueName = show.VenueName
	r.ArtistID = show.ArtistID
	r.ArtistName = show.ArtistName
	r.ArtistImageLink = show.ArtistImageLink
	r.StartTime = timezone.Format(show.StartTime, constant.DateFormat)
}

type GetShowsResponse struct {
	Shows     []ShowResponse `json:"shows"`
	TotalData int            `json:"total_data"`
	TotalPage int            `json:"total_page"`
	Page      int            `json:"page"`
}

func (r *GetShowsResponse) FromModels(models []model.Show, totalData, limit, page int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Page = page

	r.Shows = make([]ShowResponse, len(models))
	for i, m := range models {
		r.Shows[i].FromModel(m)
	}
}
