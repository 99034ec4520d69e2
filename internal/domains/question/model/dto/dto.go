package dto

import (
	"encoding/json"
	"marquee/internal/domains/question/model"
	"marquee/shared"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"net/http"
	"strconv"
)

// QuestionRequest is the full field set of a question. category and difficulty may
// arrive as numbers or numeric strings; question and answer must be strings.
type QuestionRequest struct {
	Question   string `json:"question"   validate:"required"`
	Answer     string `json:"answer"     validate:"required"`
	Category   *int   `json:"category"   validate:"required,gt=0"`
	Difficulty *int   `json:"difficulty" validate:"required"`
}

func (r *QuestionRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Question   json.RawMessage `json:"question"`
		Answer     json.RawMessage `json:"answer"`
		Category   json.RawMessage `json:"category"`
		Difficulty json.RawMessage `json:"difficulty"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck
	}

	fields := map[string]string{}

	r.Question = stringField(raw.Question, model.FieldQuestion, fields)
	r.Answer = stringField(raw.Answer, "answer", fields)
	r.Category = intField(raw.Category, model.FieldCategory, fields)
	r.Difficulty = intField(raw.Difficulty, model.FieldDifficulty, fields)

	if len(fields) > 0 {
		return failure.ValidationFailed(fields) //nolint:wrapcheck
	}

	return nil
}

// stringField decodes a string member. An absent member is left for the required
// check; a member of another type is recorded in fields.
func stringField(raw json.RawMessage, name string, fields map[string]string) string {
	if gDto.Absent(raw) {
		return ""
	}

	value, ok := gDto.CoerceString(raw)
	if !ok {
		fields[name] = name + " must be a string"
	}

	return value
}

func intField(raw json.RawMessage, name string, fields map[string]string) *int {
	if gDto.Absent(raw) {
		return nil
	}

	value, ok := gDto.CoerceInt(raw)
	if !ok {
		fields[name] = name + " must be an integer"

		return nil
	}

	return &value
}

func (r *QuestionRequest) ToModel() model.Question {
	return model.Question{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   *r.Category,
		Difficulty: *r.Difficulty,
	}
}

type CreateQuestionResponse struct {
	ID int `json:"id"`
}

type QuestionResponse struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (r *QuestionResponse) FromModel(m model.Question) {
	r.ID = m.ID
	r.Question = m.Question
	r.Answer = m.Answer
	r.Category = m.Category
	r.Difficulty = m.Difficulty
}

func FromModels(models []model.Question) []QuestionResponse {
	res := make([]QuestionResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

// GetQuestionsResponse is one page of questions. CurrentCategory is null when the
// listing spans every category.
type GetQuestionsResponse struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	TotalPage       int                `json:"total_page"`
	Page            int                `json:"page"`
	CurrentCategory *int               `json:"current_category"`
	Categories      map[int]string     `json:"categories"`
}

func (r *GetQuestionsResponse) FromModels(models []model.Question, categories map[int]string, category, totalData, limit, page int) {
	r.Questions = FromModels(models)
	r.TotalQuestions = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Page = page
	r.Categories = categories

	if category > 0 {
		r.CurrentCategory = &category
	}
}

// CategoryFromRequest reads current_category, or its alias category. Absent, empty
// and "null" select every category and yield 0; anything else must be a positive
// integer.
func CategoryFromRequest(r *http.Request) (int, error) {
	query := r.URL.Query()

	raw := query.Get(constant.RequestParamCurrentCategory)
	if !query.Has(constant.RequestParamCurrentCategory) {
		raw = query.Get(constant.RequestParamCategory)
	}

	if raw == constant.Empty || raw == constant.NullCategory {
		return 0, nil
	}

	category, err := strconv.Atoi(raw)
	if err != nil || category < 1 {
		return 0, failure.InvalidCategoryParam
	}

	return category, nil
}
