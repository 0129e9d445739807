package services

import "learnmate/models"

// missingAnswer is scored for positions the caller did not answer. It can
// never equal a correct option index, so unanswered questions always
// count as wrong rather than erroring.
const missingAnswer = -1

// sampleQuestions is the static question bank. Questions are never
// persisted or user-managed.
var sampleQuestions = []models.QuizQuestion{
	{
		Subject:      "General",
		Text:         "2 + 2 = ?",
		Options:      []string{"3", "4", "5", "6"},
		CorrectIndex: 1,
	},
	{
		Subject:      "General",
		Text:         "Capital of France?",
		Options:      []string{"Berlin", "Paris", "Madrid", "Rome"},
		CorrectIndex: 1,
	},
}

// QuizService serves the static question bank and scores submissions.
type QuizService struct {
	bank []models.QuizQuestion
}

// NewQuizService creates a quiz service backed by the built-in bank.
func NewQuizService() *QuizService {
	return &QuizService{bank: sampleQuestions}
}

// Questions returns the full bank. The subject argument is accepted for
// API compatibility but not applied; every question is always returned.
func (qs *QuizService) Questions(subject string) []models.QuizQuestion {
	return qs.bank
}

// Score compares answers positionally against the bank. Extra answers
// beyond the bank are ignored; missing ones score as wrong. Any value
// that does not match the correct index (negative included) is silently
// wrong.
func (qs *QuizService) Score(answers []int) (correct, total int) {
	total = len(qs.bank)
	for i, q := range qs.bank {
		answer := missingAnswer
		if i < len(answers) {
			answer = answers[i]
		}
		if answer == q.CorrectIndex {
			correct++
		}
	}
	return correct, total
}
