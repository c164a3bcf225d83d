// Package session is the quiz attempt state machine: content → quiz → results.
// Apply is pure; persistence lives in Store.
package session

import (
	"errors"

	"github.com/google/uuid"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/learning/quizzes/dto"
)

type Phase string

const (
	PhaseContent Phase = "content"
	PhaseQuiz    Phase = "quiz"
	PhaseResults Phase = "results"
)

// NoAnswer marks a question without a selected option.
const NoAnswer = -1

var (
	ErrInvalidTransition = errors.New("invalid transition for current phase")
	ErrNoQuestions       = errors.New("lesson has no questions")
	ErrUnanswered        = errors.New("current question has no answer")
	ErrLastQuestion      = errors.New("already at the last question")
	ErrNotLastQuestion   = errors.New("submit is only allowed on the last question")
	ErrInvalidAnswer     = errors.New("answer out of range")
	ErrMissingOutcome    = errors.New("submit requires a validator outcome")
	ErrAlreadyPassed     = errors.New("passed attempts cannot be retried")
)

type State struct {
	LessonID    uuid.UUID             `json:"lesson_id"`
	Phase       Phase                 `json:"phase"`
	QuestionIDs []uuid.UUID           `json:"question_ids"`
	Index       int                   `json:"index"`
	Answers     []int                 `json:"answers"`
	Outcome     *dto.ValidationResult `json:"outcome,omitempty"`
}

func New(lessonID uuid.UUID) State {
	return State{LessonID: lessonID, Phase: PhaseContent}
}

type ActionKind string

const (
	ActionStart  ActionKind = "start"
	ActionSelect ActionKind = "select"
	ActionNext   ActionKind = "next"
	ActionPrev   ActionKind = "prev"
	ActionSubmit ActionKind = "submit"
	ActionRetry  ActionKind = "retry"
	ActionReset  ActionKind = "reset"
)

type Action struct {
	Kind      ActionKind
	Questions []uuid.UUID
	Answer    int
	Outcome   *dto.ValidationResult
}

func Start(questions []uuid.UUID) Action { return Action{Kind: ActionStart, Questions: questions} }
func Select(answer int) Action { return Action{Kind: ActionSelect, Answer: answer} }
func Next() Action { return Action{Kind: ActionNext} }
func Prev() Action { return Action{Kind: ActionPrev} }
func Submit(out dto.ValidationResult) Action { return Action{Kind: ActionSubmit, Outcome: &out} }
func Retry() Action { return Action{Kind: ActionRetry} }
func Reset() Action { return Action{Kind: ActionReset} }

// Apply returns the state after a, or s unchanged with an error when a is not allowed.
// s is never mutated.
func Apply(s State, a Action) (State, error) {
	switch a.Kind {
	case ActionReset:
		return New(s.LessonID), nil

	case ActionStart:
		if s.Phase != PhaseContent {
			return s, ErrInvalidTransition
		}
		if len(a.Questions) == 0 {
			return s, ErrNoQuestions
		}
		return freshQuiz(s.LessonID, a.Questions), nil

	case ActionSelect:
		if s.Phase != PhaseQuiz {
			return s, ErrInvalidTransition
		}
		if a.Answer < 0 || a.Answer >= constants.AnswerOptions {
			return s, ErrInvalidAnswer
		}
		n := s.clone()
		n.Answers[n.Index] = a.Answer
		return n, nil

	case ActionNext:
		if s.Phase != PhaseQuiz {
			return s, ErrInvalidTransition
		}
		if !s.CurrentAnswered() {
			return s, ErrUnanswered
		}
		if s.OnLast() {
			return s, ErrLastQuestion
		}
		n := s.clone()
		n.Index++
		return n, nil

	case ActionPrev:
		if s.Phase != PhaseQuiz {
			return s, ErrInvalidTransition
		}
		n := s.clone()
		if n.Index > 0 {
			n.Index--
		}
		return n, nil

	case ActionSubmit:
		if err := ReadyToSubmit(s); err != nil {
			return s, err
		}
		if a.Outcome == nil {
			return s, ErrMissingOutcome
		}
		n := s.clone()
		out := *a.Outcome
		n.Phase = PhaseResults
		n.Outcome = &out
		return n, nil

	case ActionRetry:
		if s.Phase != PhaseResults {
			return s, ErrInvalidTransition
		}
		if s.Outcome != nil && s.Outcome.Passed {
			return s, ErrAlreadyPassed
		}
		return freshQuiz(s.LessonID, s.QuestionIDs), nil
	}
	return s, ErrInvalidTransition
}

// ReadyToSubmit reports whether submit would be accepted, before the caller runs the validator.
func ReadyToSubmit(s State) error {
	if s.Phase != PhaseQuiz {
		return ErrInvalidTransition
	}
	if !s.OnLast() {
		return ErrNotLastQuestion
	}
	if !s.CurrentAnswered() {
		return ErrUnanswered
	}
	return nil
}

func (s State) OnLast() bool {
	return s.Index == len(s.QuestionIDs)-1
}

func (s State) CurrentAnswered() bool {
	return s.Index >= 0 && s.Index < len(s.Answers) && s.Answers[s.Index] != NoAnswer
}

// AnswerSet pairs every question with its selected option; unanswered questions carry a nil answer.
func (s State) AnswerSet() []dto.Answer {
	out := make([]dto.Answer, len(s.QuestionIDs))
	for i, id := range s.QuestionIDs {
		out[i] = dto.Answer{QuestionID: id}
		if i < len(s.Answers) && s.Answers[i] != NoAnswer {
			v := s.Answers[i]
			out[i].UserAnswer = &v
		}
	}
	return out
}

func freshQuiz(lessonID uuid.UUID, questions []uuid.UUID) State {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = NoAnswer
	}
	return State{
		LessonID:    lessonID,
		Phase:       PhaseQuiz,
		QuestionIDs: append([]uuid.UUID(nil), questions...),
		Answers:     answers,
	}
}

func (s State) clone() State {
	n := s
	n.QuestionIDs = append([]uuid.UUID(nil), s.QuestionIDs...)
	n.Answers = append([]int(nil), s.Answers...)
	if s.Outcome != nil {
		out := *s.Outcome
		n.Outcome = &out
	}
	return n
}
