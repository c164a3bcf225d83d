package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	UserProgressID               uint       `gorm:"column:user_progress_id;primaryKey" json:"user_progress_id"`
	UserProgressUserID           uuid.UUID  `gorm:"column:user_progress_user_id;type:uuid;not null;unique" json:"user_progress_user_id"`
	UserProgressTotalXP          int        `gorm:"column:user_progress_total_xp;not null;default:0" json:"user_progress_total_xp"`
	UserProgressLevel            int        `gorm:"column:user_progress_level;not null;default:1" json:"user_progress_level"`
	UserProgressCurrentStreak    int        `gorm:"column:user_progress_current_streak;not null;default:0" json:"user_progress_current_streak"`
	UserProgressLongestStreak    int        `gorm:"column:user_progress_longest_streak;not null;default:0" json:"user_progress_longest_streak"`
	UserProgressLessonsCompleted int        `gorm:"column:user_progress_lessons_completed;not null;default:0" json:"user_progress_lessons_completed"`
	UserProgressLastActivityDate *time.Time `gorm:"column:user_progress_last_activity_date;type:date" json:"user_progress_last_activity_date,omitempty"`
	LastUpdated                  time.Time  `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
