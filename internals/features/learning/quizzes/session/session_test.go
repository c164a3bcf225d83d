package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/features/learning/quizzes/dto"
)

func started(t *testing.T, n int) State {
	t.Helper()
	qs := make([]uuid.UUID, n)
	for i := range qs {
		qs[i] = uuid.New()
	}
	s, err := Apply(New(uuid.New()), Start(qs))
	require.NoError(t, err)
	return s
}

func must(t *testing.T, s State, a Action) State {
	t.Helper()
	n, err := Apply(s, a)
	require.NoError(t, err)
	return n
}

func TestStart(t *testing.T) {
	s := New(uuid.New())

	_, err := Apply(s, Start(nil))
	assert.ErrorIs(t, err, ErrNoQuestions)

	q := started(t, 3)
	assert.Equal(t, PhaseQuiz, q.Phase)
	assert.Equal(t, 0, q.Index)
	assert.Equal(t, []int{NoAnswer, NoAnswer, NoAnswer}, q.Answers)

	_, err = Apply(q, Start(q.QuestionIDs))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSelectAndNavigate(t *testing.T) {
	s := started(t, 3)

	_, err := Apply(s, Next())
	assert.ErrorIs(t, err, ErrUnanswered)

	_, err = Apply(s, Select(4))
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	s = must(t, s, Select(2))
	s = must(t, s, Next())
	assert.Equal(t, 1, s.Index)

	s = must(t, s, Prev())
	assert.Equal(t, 0, s.Index)
	s = must(t, s, Prev())
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, 2, s.Answers[0])
}

func TestNextOnLastIsInvalid(t *testing.T) {
	s := started(t, 1)
	s = must(t, s, Select(0))

	_, err := Apply(s, Next())
	assert.ErrorIs(t, err, ErrLastQuestion)
}

func TestSubmitPreconditions(t *testing.T) {
	s := started(t, 2)
	s = must(t, s, Select(1))

	assert.ErrorIs(t, ReadyToSubmit(s), ErrNotLastQuestion)

	s = must(t, s, Next())
	assert.ErrorIs(t, ReadyToSubmit(s), ErrUnanswered)

	s = must(t, s, Select(3))
	require.NoError(t, ReadyToSubmit(s))

	_, err := Apply(s, Action{Kind: ActionSubmit})
	assert.ErrorIs(t, err, ErrMissingOutcome)

	r := must(t, s, Submit(dto.ValidationResult{Score: 50, TotalQuestions: 2, CorrectCount: 1}))
	assert.Equal(t, PhaseResults, r.Phase)
	assert.Equal(t, float64(50), r.Outcome.Score)
}

func TestRetry(t *testing.T) {
	s := started(t, 1)
	s = must(t, s, Select(1))

	failed := must(t, s, Submit(dto.ValidationResult{Score: 0, Passed: false}))
	again := must(t, failed, Retry())
	assert.Equal(t, PhaseQuiz, again.Phase)
	assert.Equal(t, 0, again.Index)
	assert.Equal(t, []int{NoAnswer}, again.Answers)
	assert.Nil(t, again.Outcome)

	passed := must(t, s, Submit(dto.ValidationResult{Score: 100, Passed: true}))
	_, err := Apply(passed, Retry())
	assert.ErrorIs(t, err, ErrAlreadyPassed)

	_, err = Apply(s, Retry())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestResetFromAnyPhase(t *testing.T) {
	s := started(t, 1)
	s = must(t, s, Select(1))
	r := must(t, s, Submit(dto.ValidationResult{Passed: true, Score: 100}))

	for _, st := range []State{New(s.LessonID), s, r} {
		n := must(t, st, Reset())
		assert.Equal(t, PhaseContent, n.Phase)
		assert.Equal(t, s.LessonID, n.LessonID)
		assert.Empty(t, n.QuestionIDs)
	}
}

func TestApplyDoesNotMutate(t *testing.T) {
	s := started(t, 2)
	_ = must(t, s, Select(3))
	assert.Equal(t, NoAnswer, s.Answers[0])
}

func TestAnswerSet(t *testing.T) {
	s := started(t, 2)
	s = must(t, s, Select(2))

	set := s.AnswerSet()
	require.Len(t, set, 2)
	assert.Equal(t, s.QuestionIDs[0], set[0].QuestionID)
	assert.Equal(t, 2, *set[0].UserAnswer)
	assert.Nil(t, set[1].UserAnswer)
}
