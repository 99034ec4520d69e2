package model

import (
	"strconv"
	"time"
)

const (
	TableName  = "shows"
	EntityName = "show"

	FieldVenueID   = "venue_id"
	FieldArtistID  = "artist_id"
	FieldStartTime = "start_time"
)

const (
	EventShowBooked      = "show.booked"
	EventShowRescheduled = "show.rescheduled"
	EventShowCancelled   = "show.cancelled"
)

// Show is one booking of an artist at a venue. (venue_id, artist_id, start_time) is
// its identity. The venue and artist columns are read through the join and never written.
type Show struct {
	VenueID         int       `db:"venue_id"`
	ArtistID        int       `db:"artist_id"`
	StartTime       time.Time `db:"start_time"`
	VenueName       string    `db:"venue_name"        table:"venues"  column:"name"`
	VenueImageLink  string    `db:"venue_image_link"  table:"venues"  column:"image_link"`
	ArtistName      string    `db:"artist_name"       table:"artists" column:"name"`
	ArtistImageLink string    `db:"artist_image_link" table:"artists" column:"image_link"`
}

func (Show) GetJoinQuery() string {
	return "JOIN venues ON venues.id = shows.venue_id JOIN artists ON artists.id = shows.artist_id"
}

// StartOf is the start time accessor used to partition shows around now.
func StartOf(show Show) time.Time {
	return show.StartTime
}

// Event is the payload published for every committed show change.
type Event struct {
	Type         string     `json:"type"`
	VenueID      int        `json:"venue_id"`
	ArtistID     int        `json:"artist_id"`
	StartTime    time.Time  `json:"start_time"`
	NewStartTime *time.Time `json:"new_start_time,omitempty"`
}

// Key groups every event of one venue on the same partition.
func (e Event) Key() string {
	return EntityName + ":" + strconv.Itoa(e.VenueID)
}
