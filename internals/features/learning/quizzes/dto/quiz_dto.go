package dto

import "github.com/google/uuid"

// Answer is one (question, chosen option) pair. A nil UserAnswer is graded as wrong.
type Answer struct {
	QuestionID uuid.UUID `json:"questionId" validate:"required"`
	UserAnswer *int      `json:"userAnswer"`
}

type ValidateRequest struct {
	LessonID uuid.UUID `json:"lessonId" validate:"required"`
	Answers  []Answer  `json:"answers" validate:"dive"`
}

// QuestionResult carries the answer key only for questions of the graded lesson.
type QuestionResult struct {
	QuestionID    uuid.UUID `json:"questionId"`
	Correct       bool      `json:"correct"`
	CorrectAnswer *int      `json:"correctAnswer"`
}

// ValidationResult is the authoritative grading of an answer set.
type ValidationResult struct {
	CorrectCount   int              `json:"correctCount"`
	TotalQuestions int              `json:"totalQuestions"`
	Score          float64          `json:"score"`
	Passed         bool             `json:"passed"`
	Results        []QuestionResult `json:"results"`
}
