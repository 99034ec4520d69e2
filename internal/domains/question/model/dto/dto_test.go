package dto_test

import (
	"encoding/json"
	"marquee/internal/domains/question/model"
	"marquee/internal/domains/question/model/dto"
	"marquee/shared/failure"
	"marquee/shared/validator"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRequest_Decode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		want       model.Question
		wantFields map[string]string
	}{
		{
			name: "numbers",
			body: `{"question":"Who painted the Mona Lisa?","answer":"Leonardo da Vinci","category":2,"difficulty":3}`,
			want: model.Question{Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci", Category: 2, Difficulty: 3},
		},
		{
			name: "numeric strings are coerced",
			body: `{"question":"Q","answer":"A","category":"5","difficulty":"1"}`,
			want: model.Question{Question: "Q", Answer: "A", Category: 5, Difficulty: 1},
		},
		{
			name:       "answer of the wrong type",
			body:       `{"question":"Q","answer":42,"category":1,"difficulty":1}`,
			wantFields: map[string]string{"answer": "answer must be a string"},
		},
		{
			name: "non integer category and difficulty",
			body: `{"question":"Q","answer":"A","category":"art","difficulty":2.5}`,
			wantFields: map[string]string{
				"category":   "category must be an integer",
				"difficulty": "difficulty must be an integer",
			},
		},
		{
			name: "missing fields",
			body: `{"q":"Q","difficulty":3,"category":1}`,
			wantFields: map[string]string{
				"question": "question is required",
				"answer":   "answer is required",
			},
		},
		{
			name:       "category below one",
			body:       `{"question":"Q","answer":"A","category":0,"difficulty":1}`,
			wantFields: map[string]string{"category": "category must be greater than 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.QuestionRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantFields != nil {
				var fail *failure.Failure
				require.ErrorAs(t, err, &fail)
				assert.Equal(t, failure.KindValidationFailed, fail.Kind)
				assert.Equal(t, tt.wantFields, fail.Fields)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ToModel())
		})
	}
}

func TestGetQuestionsResponse_CurrentCategory(t *testing.T) {
	res := dto.GetQuestionsResponse{}
	res.FromModels(nil, map[int]string{1: "Science"}, 0, 0, 10, 1)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"questions":[],"total_questions":0,"total_page":1,"page":1,"current_category":null,"categories":{"1":"Science"}}`, string(body))
}

func TestCategoryFromRequest(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 0},
		{query: "current_category=null", want: 0},
		{query: "current_category=", want: 0},
		{query: "current_category=3", want: 3},
		{query: "category=4", want: 4},
		{query: "current_category=null&category=4", want: 0},
		{query: "current_category=best", wantErr: true},
		{query: "current_category=0", wantErr: true},
		{query: "category=-2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := dto.CategoryFromRequest(httptest.NewRequest("GET", "/v1/questions?"+tt.query, nil))

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.KindInvalidParameter))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
