package dto

import (
	"marquee/internal/domains/artist/model"
	genreDto "marquee/internal/domains/genre/model/dto"
	showModel "marquee/internal/domains/show/model"
	"marquee/shared"
	"marquee/shared/constant"
	"marquee/shared/timezone"
	"mime/multipart"
)

// ArtistRequest is the full field set of an artist. Updates replace every field,
// including the genre set.
type ArtistRequest struct {
	Name               string `json:"name"                validate:"required,max=120"`
	City               string `json:"city"                validate:"required,max=120"`
	State              string `json:"state"               validate:"required,usstate"`
	Phone              string `json:"phone"               validate:"required,phone"`
	ImageLink          string `json:"image_link"          validate:"omitempty,url,max=500"`
	FacebookLink       string `json:"facebook_link"       validate:"omitempty,url,max=500"`
	Website            string `json:"website"             validate:"omitempty,url,max=500"`
	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`
	Genres             []int  `json:"genres"              validate:"required,min=1,unique"`
}

func (r *ArtistRequest) ToModel() model.Artist {
	return model.Artist{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Phone:              r.Phone,
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		Website:            r.Website,
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
	}
}

type CreateArtistResponse struct {
	ID int `json:"id"`
}

type ArtistSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type GetArtistsResponse struct {
	Artists   []ArtistSummary `json:"artists"`
	TotalData int             `json:"total_data"`
	TotalPage int             `json:"total_page"`
	Page      int             `json:"page"`
}

// FromModels fills the page. upcoming holds the upcoming show count per artist id.
func (r *GetArtistsResponse) FromModels(models []model.Artist, upcoming map[int]int, totalData, limit, page int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Page = page

	r.Artists = make([]ArtistSummary, len(models))
	for i, m := range models {
		r.Artists[i] = ArtistSummary{ID: m.ID, Name: m.Name, NumUpcomingShows: upcoming[m.ID]}
	}
}

type ShowEntry struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

func toShowEntries(shows []showModel.Show) []ShowEntry {
	entries := make([]ShowEntry, len(shows))
	for i, show := range shows {
		entries[i] = ShowEntry{
			VenueID:        show.VenueID,
			VenueName:      show.VenueName,
			VenueImageLink: show.VenueImageLink,
			StartTime:      timezone.Format(show.StartTime, constant.DateFormat),
		}
	}

	return entries
}

type ArtistResponse struct {
	ID                 int                      `json:"id"`
	Name               string                   `json:"name"`
	Genres             []genreDto.GenreResponse `json:"genres"`
	City               string                   `json:"city"`
	State              string                   `json:"state"`
	Phone              string                   `json:"phone"`
	Website            string                   `json:"website"`
	FacebookLink       string                   `json:"facebook_link"`
	SeekingVenue       bool                     `json:"seeking_venue"`
	SeekingDescription string                   `json:"seeking_description"`
	ImageLink          string                   `json:"image_link"`
	PastShows          []ShowEntry              `json:"past_shows"`
	UpcomingShows      []ShowEntry              `json:"upcoming_shows"`
	PastShowsCount     int                      `json:"past_shows_count"`
	UpcomingShowsCount int                      `json:"upcoming_shows_count"`
}

func (r *ArtistResponse) FromModel(artist model.Artist, genres []genreDto.GenreResponse, past, upcoming []showModel.Show) {
	r.ID = artist.ID
	r.Name = artist.Name
	r.Genres = genres
	r.City = artist.City
	r.State = artist.State
	r.Phone = artist.Phone
	r.Website = artist.Website
	r.FacebookLink = artist.FacebookLink
	r.SeekingVenue = artist.SeekingVenue
	r.SeekingDescription = artist.SeekingDescription
	r.ImageLink = artist.ImageLink
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
