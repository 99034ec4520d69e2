package dto

import (
	genreDto "marquee/internal/domains/genre/model/dto"
	showModel "marquee/internal/domains/show/model"
	"marquee/internal/domains/venue/model"
	"marquee/shared"
	"marquee/shared/constant"
	"marquee/shared/timezone"
	"mime/multipart"
)

// VenueRequest is the full field set of a venue. Updates replace every field,
// including the genre set.
type VenueRequest struct {
	Name               string `json:"name"                validate:"required,max=120"`
	City               string `json:"city"                validate:"required,max=120"`
	State              string `json:"state"               validate:"required,usstate"`
	Address            string `json:"address"             validate:"required,max=120"`
	Phone              string `json:"phone"               validate:"required,phone"`
	ImageLink          string `json:"image_link"          validate:"omitempty,url,max=500"`
	FacebookLink       string `json:"facebook_link"       validate:"omitempty,url,max=500"`
	Website            string `json:"website"             validate:"omitempty,url,max=500"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`
	Genres             []int  `json:"genres"              validate:"required,min=1,unique"`
}

func (r *VenueRequest) ToModel() model.Venue {
	return model.Venue{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              r.Phone,
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		Website:            r.Website,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
	}
}

type CreateVenueResponse struct {
	ID int `json:"id"`
}

type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type GetVenuesResponse struct {
	Venues    []VenueSummary `json:"venues"`
	TotalData int            `json:"total_data"`
	TotalPage int            `json:"total_page"`
	Page      int            `json:"page"`
}

// FromModels fills the page. upcoming holds the upcoming show count per venue id.
func (r *GetVenuesResponse) FromModels(models []model.Venue, upcoming map[int]int, totalData, limit, page int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Page = page

	r.Venues = make([]VenueSummary, len(models))
	for i, m := range models {
		r.Venues[i] = VenueSummary{ID: m.ID, Name: m.Name, NumUpcomingShows: upcoming[m.ID]}
	}
}

// AreaResponse groups the venues of one city.
type AreaResponse struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// FromModels groups venues already ordered by state and city.
func FromModels(models []model.Venue, upcoming map[int]int) []AreaResponse {
	areas := []AreaResponse{}

	for _, m := range models {
		last := len(areas) - 1
		if last < 0 || areas[last].City != m.City || areas[last].State != m.State {
			areas = append(areas, AreaResponse{City: m.City, State: m.State, Venues: []VenueSummary{}})
			last++
		}

		areas[last].Venues = append(areas[last].Venues, VenueSummary{ID: m.ID, Name: m.Name, NumUpcomingShows: upcoming[m.ID]})
	}

	return areas
}

type ShowEntry struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func toShowEntries(shows []showModel.Show) []ShowEntry {
	entries := make([]ShowEntry, len(shows))
	for i, show := range shows {
		entries[i] = ShowEntry{
			ArtistID:        show.ArtistID,
			ArtistName:      show.ArtistName,
			ArtistImageLink: show.ArtistImageLink,
			StartTime:       timezone.Format(show.StartTime, constant.DateFormat),
		}
	}

	return entries
}

type VenueResponse struct {
	ID                 int                      `json:"id"`
	Name               string                   `json:"name"`
	Genres             []genreDto.GenreResponse `json:"genres"`
	Address            string                   `json:"address"`
	City               string                   `json:"city"`
	State              string                   `json:"state"`
	Phone              string                   `json:"phone"`
	Website            string                   `json:"website"`
	FacebookLink       string                   `json:"facebook_link"`
	SeekingTalent      bool                     `json:"seeking_talent"`
	SeekingDescription string                   `json:"seeking_description"`
	ImageLink          string                   `json:"image_link"`
	PastShows          []ShowEntry              `json:"past_shows"`
	UpcomingShows      []ShowEntry              `json:"upcoming_shows"`
	PastShowsCount     int                      `json:"past_shows_count"`
	UpcomingShowsCount int                      `json:"upcoming_shows_count"`
}

func (r *VenueResponse) FromModel(venue model.Venue, genres []genreDto.GenreResponse, past, upcoming []showModel.Show) {
	r.ID = venue.ID
	r.Name = venue.Name
	r.Genres = genres
	r.Address = venue.Address
	r.City = venue.City
	r.State = venue.State
	r.Phone = venue.Phone
	r.Website = venue.Website
	r.FacebookLink = venue.FacebookLink
	r.SeekingTalent = venue.SeekingTalent
	r.SeekingDescription = venue.SeekingDescription
	r.ImageLink = venue.ImageLink
	r.PastShows = toShowEntries(past)
	r.UpcomingShows = toShowEntries(upcoming)
	r.PastShowsCount = len(past)
	r.UpcomingShowsCount = len(upcoming)
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
