package dto

import (
	completionDto "capacitajun_backend/internals/features/learning/completions/dto"
	questionDto "capacitajun_backend/internals/features/learning/questions/dto"
	"capacitajun_backend/internals/features/learning/quizzes/session"
)

type AnswerRequest struct {
	Answer *int `json:"answer" validate:"required,gte=0,lte=3"`
}

// AttemptView is the attempt state plus the question under the cursor.
type AttemptView struct {
	State      session.State                 `json:"state"`
	Current    *questionDto.LearnerQuestion  `json:"current_question,omitempty"`
	Submission *completionDto.SubmitResponse `json:"submission,omitempty"`
}
