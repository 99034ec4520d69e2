package service

import (
	"marquee/internal/domains/question/model"
	"slices"
)

// Select returns one of the questions whose id is not in previous, chosen by pick,
// or nil when none is left. pick(n) must return a value in [0, n).
func Select(questions []model.Question, previous []int, pick func(n int) int) *model.Question {
	candidates := make([]model.Question, 0, len(questions))

	for _, question := range questions {
		if !slices.Contains(previous, question.ID) {
			candidates = append(candidates, question)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	return &candidates[pick(len(candidates))]
}
