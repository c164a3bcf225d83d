package model

import (
	"time"

	"github.com/google/uuid"
)

type BadgeModel struct {
	BadgeID          uuid.UUID `gorm:"column:badge_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"badge_id"`
	BadgeCode        string    `gorm:"column:badge_code;type:varchar(60);not null;unique" json:"badge_code"`
	BadgeName        string    `gorm:"column:badge_name;type:varchar(120);not null" json:"badge_name"`
	BadgeDescription string    `gorm:"column:badge_description;type:text" json:"badge_description"`
	BadgeIcon        string    `gorm:"column:badge_icon;type:varchar(255)" json:"badge_icon"`
	BadgeCriteria    string    `gorm:"column:badge_criteria;type:varchar(40);not null" json:"badge_criteria"` // lessons_completed|streak_days|total_xp
	BadgeThreshold   int       `gorm:"column:badge_threshold;not null" json:"badge_threshold"`
	BadgeXPReward    int       `gorm:"column:badge_xp_reward;not null;default:0" json:"badge_xp_reward"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BadgeModel) TableName() string {
	return "badges"
}

type UserBadgeModel struct {
	UserBadgeID        uuid.UUID `gorm:"column:user_badge_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_badge_id"`
	UserBadgeUserID    uuid.UUID `gorm:"column:user_badge_user_id;type:uuid;not null;uniqueIndex:uq_user_badge" json:"user_badge_user_id"`
	UserBadgeBadgeID   uuid.UUID `gorm:"column:user_badge_badge_id;type:uuid;not null;uniqueIndex:uq_user_badge" json:"user_badge_badge_id"`
	UserBadgeAwardedAt time.Time `gorm:"column:user_badge_awarded_at;autoCreateTime" json:"user_badge_awarded_at"`
}

func (UserBadgeModel) TableName() string {
	return "user_badges"
}
