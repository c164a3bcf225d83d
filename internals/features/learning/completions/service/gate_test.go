package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	quizDto "capacitajun_backend/internals/features/learning/quizzes/dto"
	quizService "capacitajun_backend/internals/features/learning/quizzes/service"
	progressDto "capacitajun_backend/internals/features/progress/progress/dto"
	progressService "capacitajun_backend/internals/features/progress/progress/service"
	"capacitajun_backend/internals/helpers/testdb"
)

type fixedKeys map[uuid.UUID]quizService.AnswerKey

func (f fixedKeys) AnswerKey(_ context.Context, id uuid.UUID) (quizService.AnswerKey, error) {
	k, ok := f[id]
	if !ok {
		return quizService.AnswerKey{}, quizService.ErrQuestionNotFound
	}
	return k, nil
}

type fixture struct {
	userID, categoryID, lessonID, nextID uuid.UUID
	q1, q2                               uuid.UUID
}

func newFixture() fixture {
	return fixture{
		userID: uuid.New(), categoryID: uuid.New(), lessonID: uuid.New(), nextID: uuid.New(),
		q1: uuid.New(), q2: uuid.New(),
	}
}

var lessonCols = []string{"lesson_id", "lesson_category_id", "lesson_title", "lesson_order_index"}

// expectLocate mocks lessonService.Locate for f.lessonID as the first lesson of its category.
func (f fixture) expectLocate(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE lesson_id = \$1`).
		WithArgs(f.lessonID, 1).
		WillReturnRows(sqlmock.NewRows(lessonCols).AddRow(f.lessonID.String(), f.categoryID.String(), "Segurança da informação", 0))
	mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE lesson_category_id = \$1`).
		WillReturnRows(sqlmock.NewRows(lessonCols).
			AddRow(f.lessonID.String(), f.categoryID.String(), "Segurança da informação", 0).
			AddRow(f.nextID.String(), f.categoryID.String(), "Senhas fortes", 1))
	mock.ExpectQuery(`FROM "lesson_completions"`).
		WillReturnRows(sqlmock.NewRows([]string{"lesson_completion_lesson_id"}))
}

func (f fixture) expectQuestionIDs(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT "question_id" FROM "questions" WHERE question_lesson_id = \$1`).
		WithArgs(f.lessonID).
		WillReturnRows(sqlmock.NewRows([]string{"question_id"}).AddRow(f.q1.String()).AddRow(f.q2.String()))
}

func (f fixture) gate(db *gorm.DB, hook CompletionHook) *Gate {
	return &Gate{
		DB: db,
		Keys: fixedKeys{
			f.q1: {LessonID: f.lessonID, CorrectIndex: 0},
			f.q2: {LessonID: f.lessonID, CorrectIndex: 2},
		},
		OnCompleted: hook,
		Now:         func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) },
	}
}

func answer(id uuid.UUID, v int) quizDto.Answer {
	return quizDto.Answer{QuestionID: id, UserAnswer: &v}
}

func TestCoversExactly(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	qs := []uuid.UUID{a, b}

	assert.True(t, CoversExactly(qs, []quizDto.Answer{answer(b, 0), answer(a, 1)}))
	assert.False(t, CoversExactly(qs, []quizDto.Answer{answer(a, 0)}))
	assert.False(t, CoversExactly(qs, []quizDto.Answer{answer(a, 0), answer(a, 1)}))
	assert.False(t, CoversExactly(qs, []quizDto.Answer{answer(a, 0), answer(c, 1)}))
	assert.False(t, CoversExactly(qs, nil))
}

func TestSubmit_PassRecordsCompletionAndFiresHook(t *testing.T) {
	db, mock := testdb.New(t)
	f := newFixture()

	f.expectLocate(mock)
	f.expectQuestionIDs(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_progress" .* ON CONFLICT \("user_progress_user_id"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"user_progress_id"}))
	mock.ExpectQuery(`SELECT \* FROM "user_progress" WHERE user_progress_user_id = \$1 LIMIT \$2 FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"user_progress_id", "user_progress_user_id", "user_progress_level"}).
			AddRow(1, f.userID.String(), 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "lesson_completions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "lesson_completions" .* ON CONFLICT \("lesson_completion_user_id","lesson_completion_lesson_id"\) DO UPDATE SET "lesson_completion_score"="excluded"."lesson_completion_score"`).
		WillReturnRows(sqlmock.NewRows([]string{"lesson_completion_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	var got progressService.LessonEvent
	hook := func(_ context.Context, _ *gorm.DB, ev progressService.LessonEvent) (progressDto.GamificationDelta, error) {
		got = ev
		return progressDto.GamificationDelta{XPAwarded: 75, TotalXP: 75, Level: 1}, nil
	}

	out, err := f.gate(db, hook).Submit(context.Background(), f.userID, f.lessonID,
		[]quizDto.Answer{answer(f.q1, 0), answer(f.q2, 2)})
	require.NoError(t, err)

	assert.True(t, out.Result.Passed)
	assert.Equal(t, float64(100), out.Result.Score)
	require.NotNil(t, out.Completion)
	assert.Equal(t, f.lessonID, out.Completion.LessonID)
	require.NotNil(t, out.Gamification)
	assert.Equal(t, 75, out.Gamification.XPAwarded)
	require.NotNil(t, out.NextLessonID)
	assert.Equal(t, f.nextID, *out.NextLessonID)

	assert.True(t, got.FirstPass)
	assert.Equal(t, float64(100), got.Score)
	assert.Equal(t, "Segurança da informação", got.LessonTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_SecondPassOverwritesWithoutFirstPass(t *testing.T) {
	db, mock := testdb.New(t)
	f := newFixture()

	f.expectLocate(mock)
	f.expectQuestionIDs(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_progress" .* ON CONFLICT \("user_progress_user_id"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"user_progress_id"}))
	mock.ExpectQuery(`SELECT \* FROM "user_progress" WHERE user_progress_user_id = \$1 LIMIT \$2 FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"user_progress_id", "user_progress_user_id", "user_progress_level"}).
			AddRow(1, f.userID.String(), 2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "lesson_completions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "lesson_completions" .* ON CONFLICT \("lesson_completion_user_id","lesson_completion_lesson_id"\) DO UPDATE SET "lesson_completion_score"="excluded"."lesson_completion_score"`).
		WillReturnRows(sqlmock.NewRows([]string{"lesson_completion_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	var got progressService.LessonEvent
	hook := func(_ context.Context, _ *gorm.DB, ev progressService.LessonEvent) (progressDto.GamificationDelta, error) {
		got = ev
		return progressDto.GamificationDelta{TotalXP: 150, Level: 2}, nil
	}

	out, err := f.gate(db, hook).Submit(context.Background(), f.userID, f.lessonID,
		[]quizDto.Answer{answer(f.q1, 0), answer(f.q2, 2)})
	require.NoError(t, err)

	require.NotNil(t, out.Completion)
	assert.Equal(t, float64(100), out.Completion.Score)
	require.NotNil(t, out.Gamification)
	assert.Equal(t, 0, out.Gamification.XPAwarded)

	assert.False(t, got.FirstPass)
	assert.Equal(t, float64(100), got.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_FailDoesNotRecord(t *testing.T) {
	db, mock := testdb.New(t)
	f := newFixture()

	f.expectLocate(mock)
	f.expectQuestionIDs(mock)

	hook := func(context.Context, *gorm.DB, progressService.LessonEvent) (progressDto.GamificationDelta, error) {
		t.Fatal("hook must not run for a failed attempt")
		return progressDto.GamificationDelta{}, nil
	}

	out, err := f.gate(db, hook).Submit(context.Background(), f.userID, f.lessonID,
		[]quizDto.Answer{answer(f.q1, 0), answer(f.q2, 1)})
	require.NoError(t, err)

	assert.False(t, out.Result.Passed)
	assert.Equal(t, float64(50), out.Result.Score)
	assert.Nil(t, out.Completion)
	assert.Nil(t, out.NextLessonID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_IncompleteAnswerSet(t *testing.T) {
	db, mock := testdb.New(t)
	f := newFixture()

	f.expectLocate(mock)
	f.expectQuestionIDs(mock)

	_, err := f.gate(db, nil).Submit(context.Background(), f.userID, f.lessonID, []quizDto.Answer{answer(f.q1, 0)})
	assert.ErrorIs(t, err, ErrIncompleteAnswers)
}

func TestSubmit_LockedLesson(t *testing.T) {
	db, mock := testdb.New(t)
	f := newFixture()

	mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE lesson_id = \$1`).
		WillReturnRows(sqlmock.NewRows(lessonCols).AddRow(f.nextID.String(), f.categoryID.String(), "Senhas fortes", 1))
	mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE lesson_category_id = \$1`).
		WillReturnRows(sqlmock.NewRows(lessonCols).
			AddRow(f.lessonID.String(), f.categoryID.String(), "Segurança da informação", 0).
			AddRow(f.nextID.String(), f.categoryID.String(), "Senhas fortes", 1))
	mock.ExpectQuery(`FROM "lesson_completions"`).
		WillReturnRows(sqlmock.NewRows([]string{"lesson_completion_lesson_id"}))

	_, err := f.gate(db, nil).Submit(context.Background(), f.userID, f.nextID, []quizDto.Answer{answer(f.q1, 0)})
	assert.ErrorIs(t, err, ErrLessonLocked)
}

func TestCompleteWithoutQuiz_RejectsLessonWithQuestions(t *testing.T) {
	db, mock := testdb.New(t)
	f := newFixture()

	f.expectLocate(mock)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	_, err := f.gate(db, nil).CompleteWithoutQuiz(context.Background(), f.userID, f.lessonID)
	assert.ErrorIs(t, err, ErrHasQuestions)
}
