package model

import (
	"time"

	"github.com/google/uuid"
)

// UserPointLog is the XP ledger: one row per award.
type UserPointLog struct {
	UserPointLogID         uint       `gorm:"column:user_point_log_id;primaryKey" json:"user_point_log_id"`
	UserPointLogUserID     uuid.UUID  `gorm:"column:user_point_log_user_id;type:uuid;not null;index" json:"user_point_log_user_id"`
	UserPointLogPoints     int        `gorm:"column:user_point_log_points;not null" json:"user_point_log_points"`
	UserPointLogSourceType string     `gorm:"column:user_point_log_source_type;type:varchar(40);not null" json:"user_point_log_source_type"` // lesson_completion|perfect_score|streak_bonus|badge
	UserPointLogSourceID   *uuid.UUID `gorm:"column:user_point_log_source_id;type:uuid" json:"user_point_log_source_id,omitempty"`
	CreatedAt              time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserPointLog) TableName() string {
	return "user_point_logs"
}
