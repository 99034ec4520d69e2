package service_test

import (
	"context"
	"errors"
	"marquee/infras/otel/mocks"
	categoryMocks "marquee/internal/domains/category/mocks"
	categoryModel "marquee/internal/domains/category/model"
	questionMocks "marquee/internal/domains/question/mocks"
	"marquee/internal/domains/question/model"
	"marquee/internal/domains/question/model/dto"
	"marquee/internal/domains/question/repository"
	"marquee/internal/domains/question/service"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int {
	return &v
}

func setup(t *testing.T) (*questionMocks.MockQuestion, *categoryMocks.MockCategory, service.Question) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := questionMocks.NewMockQuestion(ctrl)
	categories := categoryMocks.NewMockCategory(ctrl)

	return repo, categories, service.New(repo, categories, mocks.NewOtel())
}

var seeded = []categoryModel.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
}

func TestQuestionService_Create(t *testing.T) {
	req := dto.QuestionRequest{
		Question:   "What is the heaviest organ in the human body?",
		Answer:     "The Liver",
		Category:   intPtr(1),
		Difficulty: intPtr(4),
	}

	tests := []struct {
		name      string
		setupMock func(repo *questionMocks.MockQuestion, categories *categoryMocks.MockCategory)
		wantID    int
		wantKind  failure.Kind
	}{
		{
			name: "successful creation",
			setupMock: func(repo *questionMocks.MockQuestion, categories *categoryMocks.MockCategory) {
				categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().InsertReturning(gomock.Any(), req.ToModel()).Return(24, nil)
			},
			wantID: 24,
		},
		{
			name: "unknown category",
			setupMock: func(_ *questionMocks.MockQuestion, categories *categoryMocks.MockCategory) {
				categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantKind: failure.KindInvalidReference,
		},
		{
			name: "insert error",
			setupMock: func(repo *questionMocks.MockQuestion, categories *categoryMocks.MockCategory) {
				categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantKind: failure.KindStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, categories, svc := setup(t)
			tt.setupMock(repo, categories)

			res, err := svc.Create(context.Background(), req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestQuestionService_GetAll(t *testing.T) {
	t.Run("out of range page falls back to the first", func(t *testing.T) {
		repo, categories, svc := setup(t)

		filter := repository.FilterByListing("zzverylongnonmatch", 0)
		repo.EXPECT().Count(gomock.Any(), filter).Return(0, nil)
		repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}, filter).Return([]model.Question{}, nil)
		categories.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(seeded, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 3}, "zzverylongnonmatch", 0)
		require.NoError(t, err)

		assert.Equal(t, 0, res.TotalQuestions)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, 1, res.Page)
		assert.Nil(t, res.CurrentCategory)
		assert.Empty(t, res.Questions)
		assert.Equal(t, map[int]string{1: "Science", 2: "Art"}, res.Categories)
	})

	t.Run("category narrows the listing", func(t *testing.T) {
		repo, categories, svc := setup(t)

		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 10}, repository.FilterByListing("", 2)).
			Return([]model.Question{{ID: 16, Question: "Which Dutch graphic artist initials M C was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1}}, nil)
		categories.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(seeded, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 2}, "", 2)
		require.NoError(t, err)

		require.NotNil(t, res.CurrentCategory)
		assert.Equal(t, 2, *res.CurrentCategory)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Questions, 1)
		assert.Equal(t, "Escher", res.Questions[0].Answer)
	})

	t.Run("count error", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, "", 0)
		assert.Error(t, err)
	})
}

func TestQuestionService_GetByCategory(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		_, categories, svc := setup(t)
		categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.GetByCategory(context.Background(), gDto.QueryParams{}, 1000)
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})

	t.Run("lists the category", func(t *testing.T) {
		repo, categories, svc := setup(t)

		categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Count(gomock.Any(), repository.FilterByCategory(1)).Return(1, nil)
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), repository.FilterByCategory(1)).Return([]model.Question{{ID: 20, Category: 1}}, nil)
		categories.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(seeded, nil)

		res, err := svc.GetByCategory(context.Background(), gDto.QueryParams{}, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, res.TotalQuestions)
		require.NotNil(t, res.CurrentCategory)
		assert.Equal(t, 1, *res.CurrentCategory)
	})
}

func TestQuestionService_Get(t *testing.T) {
	repo, _, svc := setup(t)
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Question{}, nil)

	_, err := svc.Get(context.Background(), 1000)
	assert.True(t, failure.Is(err, failure.KindNotFound))
}

func TestQuestionService_Update(t *testing.T) {
	req := dto.QuestionRequest{Question: "Q", Answer: "A", Category: intPtr(9), Difficulty: intPtr(1)}

	t.Run("missing question", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.True(t, failure.Is(svc.Update(context.Background(), req, 5), failure.KindNotFound))
	})

	t.Run("unknown category", func(t *testing.T) {
		repo, categories, svc := setup(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.True(t, failure.Is(svc.Update(context.Background(), req, 5), failure.KindInvalidReference))
	})

	t.Run("successful update", func(t *testing.T) {
		repo, categories, svc := setup(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		categories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldID)
				assert.Equal(t, 9, fields[model.FieldCategory])

				return nil
			})

		assert.NoError(t, svc.Update(context.Background(), req, 5))
	})
}

func TestQuestionService_Delete(t *testing.T) {
	t.Run("missing question", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.True(t, failure.Is(svc.Delete(context.Background(), 1000), failure.KindNotFound))
	})

	t.Run("successful delete", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 5))
	})
}
