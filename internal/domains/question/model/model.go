package model

const (
	TableName  = "questions"
	EntityName = "question"

	FieldID         = "id"
	FieldQuestion   = "question"
	FieldCategory   = "category"
	FieldDifficulty = "difficulty"
)

type Question struct {
	ID         int    `db:"id"         insert:"-"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Category   int    `db:"category"`
	Difficulty int    `db:"difficulty"`
}
