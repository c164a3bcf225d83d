package constants

// Quiz gate
const (
	// PassingScore is inclusive: a score of exactly 80 passes.
	PassingScore float64 = 80
	// AnswerOptions is the fixed number of options per question.
	AnswerOptions = 4
)

// XP rewards
const (
	LessonCompletionXP  = 50
	PerfectScoreBonusXP = 25
	StreakBonusXP       = 30
	StreakBonusEvery    = 7
)

// Point source types stored in user_point_logs.
const (
	PointSourceLessonCompletion = "lesson_completion"
	PointSourcePerfectScore     = "perfect_score"
	PointSourceStreakBonus      = "streak_bonus"
	PointSourceBadge            = "badge"
)

// Badge criteria
const (
	BadgeCriteriaLessonsCompleted = "lessons_completed"
	BadgeCriteriaStreakDays       = "streak_days"
	BadgeCriteriaTotalXP          = "total_xp"
)

// Notification types
const (
	NotificationLevelUp         = "level_up"
	NotificationBadgeEarned     = "badge_earned"
	NotificationStreak          = "streak"
	NotificationMentorship      = "mentorship"
	NotificationLessonCompleted = "lesson_completed"
)

// Lesson status
const (
	LessonStatusLocked    = "locked"
	LessonStatusAvailable = "available"
	LessonStatusCompleted = "completed"
)
