package model

const (
	TableName  = "artists"
	EntityName = "artist"

	FieldID        = "id"
	FieldName      = "name"
	FieldImageLink = "image_link"
)

type Artist struct {
	ID                 int    `db:"id"                  insert:"-"`
	Name               string `db:"name"`
	City               string `db:"city"`
	State              string `db:"state"`
	Phone              string `db:"phone"`
	ImageLink          string `db:"image_link"`
	FacebookLink       string `db:"facebook_link"`
	Website            string `db:"website"`
	SeekingVenue       bool   `db:"seeking_venue"`
	SeekingDescription string `db:"seeking_description"`
}
