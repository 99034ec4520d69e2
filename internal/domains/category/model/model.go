package model

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID   = "id"
	FieldType = "type"
)

type Category struct {
	ID   int    `db:"id"   insert:"-"`
	Type string `db:"type"`
}
