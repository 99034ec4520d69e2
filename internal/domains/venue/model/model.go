package model

const (
	TableName  = "venues"
	EntityName = "venue"

	FieldID        = "id"
	FieldName      = "name"
	FieldCity      = "city"
	FieldState     = "state"
	FieldImageLink = "image_link"
)

type Venue struct {
	ID                 int    `db:"id"                  insert:"-"`
	Name               string `db:"name"`
	City               string `db:"city"`
	State              string `db:"state"`
	Address            string `db:"address"`
	Phone              string `db:"phone"`
	ImageLink          string `db:"image_link"`
	FacebookLink       string `db:"facebook_link"`
	Website            string `db:"website"`
	SeekingTalent      bool   `db:"seeking_talent"`
	SeekingDescription string `db:"seeking_description"`
}
