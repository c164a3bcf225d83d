package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Entry struct {
	Rank       int       `json:"rank"`
	UserID     uuid.UUID `json:"user_id"`
	FullName   string    `json:"full_name"`
	Department string    `json:"department"`
	AvatarURL  string    `json:"avatar_url"`
	TotalXP    int       `json:"total_xp"`
	Level      int       `json:"level"`
	Streak     int       `json:"current_streak"`
}

// ranked orders non-admin active users by XP, then level, then who got there first.
// Admins are filtered by role in the same statement.
const ranked = `
SELECT
	ROW_NUMBER() OVER (
		ORDER BY up.user_progress_total_xp DESC, up.user_progress_level DESC, up.last_updated ASC
	) AS rank,
	up.user_progress_user_id        AS user_id,
	p.profile_full_name             AS full_name,
	COALESCE(p.profile_department, '') AS department,
	COALESCE(p.profile_avatar_url, '') AS avatar_url,
	up.user_progress_total_xp       AS total_xp,
	up.user_progress_level          AS level,
	up.user_progress_current_streak AS streak
FROM user_progress up
JOIN profiles p ON p.profile_id = up.user_progress_user_id
WHERE p.profile_role <> ? AND p.profile_is_active = TRUE`

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func Top(ctx context.Context, db *gorm.DB, limit int) ([]Entry, error) {
	var rows []Entry
	err := db.WithContext(ctx).
		Raw("SELECT * FROM ("+ranked+") r ORDER BY r.rank LIMIT ?", constants.RoleAdmin, ClampLimit(limit)).
		Scan(&rows).Error
	return rows, err
}

// Position returns the caller's row, or nil when the caller is not ranked (e.g. an admin).
func Position(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*Entry, error) {
	var row Entry
	err := db.WithContext(ctx).
		Raw("SELECT * FROM ("+ranked+") r WHERE r.user_id = ?", constants.RoleAdmin, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
