package dto

import (
	"encoding/json"
	questionDto "marquee/internal/domains/question/model/dto"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
)

// AllCategories is the category value that draws from every category.
const AllCategories = -1

// QuizRequest asks for the next question. Category may arrive as a number or a
// numeric string.
type QuizRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	Category          *int  `json:"category" validate:"required"`
}

func (r *QuizRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		PreviousQuestions []int           `json:"previous_questions"`
		Category          json.RawMessage `json:"category"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck
	}

	r.PreviousQuestions = raw.PreviousQuestions
	if r.PreviousQuestions == nil {
		r.PreviousQuestions = []int{}
	}

	if gDto.Absent(raw.Category) {
		return nil
	}

	category, ok := gDto.CoerceInt(raw.Category)
	if !ok {
		return failure.ValidationFailedField("category", "category must be an integer") //nolint:wrapcheck
	}

	r.Category = &category

	return nil
}

// QuizResponse carries the next question, or null once the quiz is exhausted.
type QuizResponse struct {
	Question *questionDto.QuestionResponse `json:"question"`
}
