// Package rule decides whether a show may be booked between an artist and a venue.
package rule

import (
	artistModel "marquee/internal/domains/artist/model"
	venueModel "marquee/internal/domains/venue/model"
)

// CanBook reports whether both sides are looking for each other: the artist is
// seeking a venue and the venue is seeking talent.
func CanBook(artist artistModel.Artist, venue venueModel.Venue) bool {
	return artist.SeekingVenue && venue.SeekingTalent
}
