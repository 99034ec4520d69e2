package model

const (
	TableName  = "genres"
	EntityName = "genre"

	FieldID          = "id"
	FieldDescription = "description"
)

const (
	VenueGenreTableName  = "venue_genres"
	VenueGenreEntityName = "venue_genre"
	ArtistGenreTableName = "artist_genres"
	ArtistGenreEntity    = "artist_genre"

	FieldVenueID  = "venue_id"
	FieldArtistID = "artist_id"
	FieldGenreID  = "genre_id"
)

type Genre struct {
	ID          int    `db:"id"          insert:"-"`
	Description string `db:"description"`
}

// VenueGenre links a venue to one genre. Description is read from the genres table.
type VenueGenre struct {
	VenueID     int    `db:"venue_id"`
	GenreID     int    `db:"genre_id"`
	Description string `db:"description" table:"genres"`
}

func (VenueGenre) GetJoinQuery() string {
	return "JOIN genres ON genres.id = venue_genres.genre_id"
}

type ArtistGenre struct {
	ArtistID    int    `db:"artist_id"`
	GenreID     int    `db:"genre_id"`
	Description string `db:"description" table:"genres"`
}

func (ArtistGenre) GetJoinQuery() string {
	return "JOIN genres ON genres.id = artist_genres.genre_id"
}
