package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/learning/completions/dto"
	"capacitajun_backend/internals/features/learning/completions/model"
	lessonModel "capacitajun_backend/internals/features/learning/lessons/model"
	lessonService "capacitajun_backend/internals/features/learning/lessons/service"
	questionService "capacitajun_backend/internals/features/learning/questions/service"
	quizDto "capacitajun_backend/internals/features/learning/quizzes/dto"
	quizService "capacitajun_backend/internals/features/learning/quizzes/service"
	progressDto "capacitajun_backend/internals/features/progress/progress/dto"
	progressService "capacitajun_backend/internals/features/progress/progress/service"
	"capacitajun_backend/internals/helpers/logger"
)

var (
	ErrLessonLocked      = errors.New("lesson is locked")
	ErrIncompleteAnswers = errors.New("answers must cover every question of the lesson exactly once")
	ErrNoQuestions       = errors.New("lesson has no questions")
	ErrHasQuestions      = errors.New("lesson has questions and must be completed through its quiz")
)

// CompletionHook runs inside the completion transaction after the record is written.
type CompletionHook func(ctx context.Context, tx *gorm.DB, ev progressService.LessonEvent) (progressDto.GamificationDelta, error)

// Gate is the only writer of lesson_completions.
type Gate struct {
	DB          *gorm.DB
	Keys        quizService.AnswerKeyLookup
	OnCompleted CompletionHook
	Now         func() time.Time
}

func NewGate(db *gorm.DB) *Gate {
	return &Gate{
		DB:          db,
		Keys:        quizService.NewGormAnswerKeys(db),
		OnCompleted: progressService.OnLessonCompleted,
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit grades answers for lessonID and, when they pass, records the completion
// and runs the gamification hook.
func (g *Gate) Submit(ctx context.Context, userID, lessonID uuid.UUID, answers []quizDto.Answer) (dto.SubmitResponse, error) {
	pos, err := g.attemptable(ctx, userID, lessonID)
	if err != nil {
		return dto.SubmitResponse{}, err
	}

	questionIDs, err := questionService.IDsByLesson(ctx, g.DB, lessonID)
	if err != nil {
		return dto.SubmitResponse{}, err
	}
	if len(questionIDs) == 0 {
		return dto.SubmitResponse{}, ErrNoQuestions
	}
	if !CoversExactly(questionIDs, answers) {
		return dto.SubmitResponse{}, ErrIncompleteAnswers
	}

	result, err := quizService.Validate(ctx, g.Keys, lessonID, answers)
	if err != nil {
		return dto.SubmitResponse{}, err
	}

	out := dto.SubmitResponse{Result: result}
	if !result.Passed {
		return out, nil
	}

	rec, delta, err := g.record(ctx, userID, pos.Lesson, result.Score)
	if err != nil {
		return dto.SubmitResponse{}, err
	}
	completion := dto.ToCompletionResponse(rec)
	out.Completion = &completion
	out.Gamification = &delta
	out.NextLessonID = pos.Next
	return out, nil
}

// CompleteWithoutQuiz records a full-score completion for a lesson with no questions.
func (g *Gate) CompleteWithoutQuiz(ctx context.Context, userID, lessonID uuid.UUID) (dto.SubmitResponse, error) {
	pos, err := g.attemptable(ctx, userID, lessonID)
	if err != nil {
		return dto.SubmitResponse{}, err
	}

	n, err := questionService.CountByLesson(ctx, g.DB, lessonID)
	if err != nil {
		return dto.SubmitResponse{}, err
	}
	if n > 0 {
		return dto.SubmitResponse{}, ErrHasQuestions
	}

	rec, delta, err := g.record(ctx, userID, pos.Lesson, 100)
	if err != nil {
		return dto.SubmitResponse{}, err
	}
	completion := dto.ToCompletionResponse(rec)
	return dto.SubmitResponse{
		Result:       quizDto.ValidationResult{Score: 100, Passed: true, Results: []quizDto.QuestionResult{}},
		Completion:   &completion,
		Gamification: &delta,
		NextLessonID: pos.Next,
	}, nil
}

func (g *Gate) attemptable(ctx context.Context, userID, lessonID uuid.UUID) (lessonService.Position, error) {
	pos, err := lessonService.Locate(ctx, g.DB, userID, lessonID)
	if err != nil {
		return pos, err
	}
	if !lessonService.CanAttempt(pos.Status) {
		return pos, ErrLessonLocked
	}
	return pos, nil
}

// record upserts the completion and fires the hook in one transaction. The
// progress row lock serialises concurrent completions of the same user, so
// FirstPass is decided exactly once per lesson.
func (g *Gate) record(ctx context.Context, userID uuid.UUID, lesson lessonModel.LessonModel, score float64) (model.LessonCompletionModel, progressDto.GamificationDelta, error) {
	now := g.Now()
	rec := model.LessonCompletionModel{
		LessonCompletionUserID:      userID,
		LessonCompletionLessonID:    lesson.LessonID,
		LessonCompletionScore:       score,
		LessonCompletionCompletedAt: now,
	}
	var delta progressDto.GamificationDelta

	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := progressService.EnsureUserProgress(tx, userID); err != nil {
			return err
		}

		var passedBefore int64
		if err := tx.Model(&model.LessonCompletionModel{}).
			Where("lesson_completion_user_id = ? AND lesson_completion_lesson_id = ? AND lesson_completion_score >= ?",
				userID, lesson.LessonID, constants.PassingScore).
			Count(&passedBefore).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lesson_completion_user_id"}, {Name: "lesson_completion_lesson_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"lesson_completion_score", "lesson_completion_completed_at"}),
		}).Create(&rec).Error; err != nil {
			return err
		}

		var err error
		delta, err = g.OnCompleted(ctx, tx, progressService.LessonEvent{
			UserID:      userID,
			LessonID:    lesson.LessonID,
			LessonTitle: lesson.LessonTitle,
			Score:       score,
			FirstPass:   passedBefore == 0,
			Today:       now,
		})
		return err
	})
	if err != nil {
		return model.LessonCompletionModel{}, progressDto.GamificationDelta{}, err
	}

	logger.WithUserID(userID.String()).
		WithField("lesson_id", lesson.LessonID).
		WithField("score", score).
		Info("lesson completed")
	return rec, delta, nil
}

// CoversExactly reports whether answers name every question once and nothing else.
func CoversExactly(questionIDs []uuid.UUID, answers []quizDto.Answer) bool {
	if len(answers) != len(questionIDs) {
		return false
	}
	want := make(map[uuid.UUID]bool, len(questionIDs))
	for _, id := range questionIDs {
		want[id] = true
	}
	seen := make(map[uuid.UUID]bool, len(answers))
	for _, a := range answers {
		if !want[a.QuestionID] || seen[a.QuestionID] {
			return false
		}
		seen[a.QuestionID] = true
	}
	return true
}

// ListForUser returns the caller's completions, newest first.
func ListForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit, offset int) ([]dto.CompletionRow, int64, error) {
	base := db.WithContext(ctx).
		Table("lesson_completions AS lc").
		Joins("JOIN lessons l ON l.lesson_id = lc.lesson_completion_lesson_id AND l.deleted_at IS NULL").
		Where("lc.lesson_completion_user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := []dto.CompletionRow{}
	err := base.
		Select(`lc.lesson_completion_id, lc.lesson_completion_lesson_id, l.lesson_title,
			lc.lesson_completion_score, lc.lesson_completion_completed_at`).
		Order("lc.lesson_completion_completed_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}
