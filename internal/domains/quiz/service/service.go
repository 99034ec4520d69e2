package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marquee/infras/otel"
	questionDto "marquee/internal/domains/question/model/dto"
	questionRepo "marquee/internal/domains/question/repository"
	"marquee/internal/domains/quiz/dto"
	"marquee/shared/constant"
	gDto "marquee/shared/dto"
	"marquee/shared/failure"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

type Quiz interface {
	Next(ctx context.Context, req dto.QuizRequest) (dto.QuizResponse, error)
}

type serviceImpl struct {
	questions questionRepo.Question
	otel      otel.Otel
}

func New(questions questionRepo.Question, otel otel.Otel) Quiz {
	return &serviceImpl{
		questions: questions,
		otel:      otel,
	}
}

// Next draws a question the player has not seen yet. The repository already leaves
// out previous questions; Select checks again so a served id is never repeated.
func (s *serviceImpl) Next(ctx context.Context, req dto.QuizRequest) (res dto.QuizResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quiz.Next")
	defer scope.End()
	defer scope.TraceIfError(&err)

	category := *req.Category
	if category != dto.AllCategories && category < 1 {
		return res, failure.InvalidParameter("category must be -1 or a positive category id") //nolint:wrapcheck
	}

	filter := questionRepo.FilterByQuiz(category, category == dto.AllCategories, req.PreviousQuestions)

	questions, err := s.questions.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Int("category", category).Msg("failed to get quiz questions")

		return res, fmt.Errorf("failed to get quiz questions: %w", err)
	}

	question := Select(questions, req.PreviousQuestions, rand.IntN)
	if question == nil {
		return res, nil
	}

	res.Question = &questionDto.QuestionResponse{}
	res.Question.FromModel(*question)

	return res, nil
}
