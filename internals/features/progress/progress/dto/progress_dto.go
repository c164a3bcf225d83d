package dto

import (
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/progress/progress/model"
)

type BadgeAward struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
	Icon string    `json:"icon,omitempty"`
}

// GamificationDelta is what one completion changed for the user.
type GamificationDelta struct {
	XPAwarded     int          `json:"xp_awarded"`
	TotalXP       int          `json:"total_xp"`
	Level         int          `json:"level"`
	LeveledUp     bool         `json:"leveled_up"`
	CurrentStreak int          `json:"current_streak"`
	LongestStreak int          `json:"longest_streak"`
	NewBadges     []BadgeAward `json:"new_badges"`
}

type ProgressResponse struct {
	UserID           uuid.UUID  `json:"user_id"`
	TotalXP          int        `json:"total_xp"`
	Level            int        `json:"level"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LessonsCompleted int        `json:"lessons_completed"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}

func ToProgressResponse(m model.UserProgress) ProgressResponse {
	return ProgressResponse{
		UserID:           m.UserProgressUserID,
		TotalXP:          m.UserProgressTotalXP,
		Level:            m.UserProgressLevel,
		CurrentStreak:    m.UserProgressCurrentStreak,
		LongestStreak:    m.UserProgressLongestStreak,
		LessonsCompleted: m.UserProgressLessonsCompleted,
		LastActivityDate: m.UserProgressLastActivityDate,
	}
}
