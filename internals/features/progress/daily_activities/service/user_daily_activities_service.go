package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/progress/daily_activities/model"
)

// Day truncates t to its UTC calendar date. Streaks count UTC days, matching
// how date columns are read back.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextStreak: same day keeps the streak, the following day extends it, anything else restarts at 1.
func NextStreak(lastDate *time.Time, lastStreak int, today time.Time) int {
	if lastDate == nil || lastStreak <= 0 {
		return 1
	}
	last := Day(*lastDate)
	now := Day(today)

	switch {
	case last.Equal(now):
		return lastStreak
	case last.AddDate(0, 0, 1).Equal(now):
		return lastStreak + 1
	default:
		return 1
	}
}

// IsNewDay reports whether today is a different calendar day than lastDate.
func IsNewDay(lastDate *time.Time, today time.Time) bool {
	if lastDate == nil {
		return true
	}
	return !Day(*lastDate).Equal(Day(today))
}

// EarnsStreakBonus is true on every StreakBonusEvery-th consecutive day.
func EarnsStreakBonus(streak int) bool {
	return streak > 0 && streak%constants.StreakBonusEvery == 0
}

// UpsertDailyActivity records today's activity row with the streak length reached.
func UpsertDailyActivity(tx *gorm.DB, userID uuid.UUID, today time.Time, streak int) error {
	row := model.UserDailyActivity{
		UserDailyActivityUserID:       userID,
		UserDailyActivityActivityDate: Day(today),
		UserDailyActivityAmountDay:    streak,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_daily_activity_user_id"},
			{Name: "user_daily_activity_activity_date"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"user_daily_activity_amount_day": streak,
			"updated_at":                     time.Now(),
		}),
	}).Create(&row).Error
}
