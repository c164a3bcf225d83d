package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/constants"
	notificationService "capacitajun_backend/internals/features/notifications/service"
	"capacitajun_backend/internals/features/progress/badges/dto"
	"capacitajun_backend/internals/features/progress/badges/model"
	pointService "capacitajun_backend/internals/features/progress/points/service"
)

// Snapshot holds the counters badge criteria are checked against.
type Snapshot struct {
	LessonsCompleted int
	StreakDays       int
	TotalXP          int
}

func Satisfied(b model.BadgeModel, s Snapshot) bool {
	switch b.BadgeCriteria {
	case constants.BadgeCriteriaLessonsCompleted:
		return s.LessonsCompleted >= b.BadgeThreshold
	case constants.BadgeCriteriaStreakDays:
		return s.StreakDays >= b.BadgeThreshold
	case constants.BadgeCriteriaTotalXP:
		return s.TotalXP >= b.BadgeThreshold
	default:
		return false
	}
}

// EvaluateBadges awards every not-yet-earned badge the snapshot satisfies.
// Each award is an insert with ON CONFLICT DO NOTHING so concurrent events cannot double-award.
func EvaluateBadges(tx *gorm.DB, userID uuid.UUID, snap Snapshot) ([]model.BadgeModel, error) {
	var pending []model.BadgeModel
	err := tx.Where(
		"NOT EXISTS (SELECT 1 FROM user_badges ub WHERE ub.user_badge_badge_id = badges.badge_id AND ub.user_badge_user_id = ?)",
		userID,
	).Order("badge_threshold ASC").Find(&pending).Error
	if err != nil {
		return nil, err
	}

	var awarded []model.BadgeModel
	for _, b := range pending {
		if !Satisfied(b, snap) {
			continue
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.UserBadgeModel{
			UserBadgeUserID:  userID,
			UserBadgeBadgeID: b.BadgeID,
		})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			continue
		}

		if err := notificationService.Notify(tx, userID, constants.NotificationBadgeEarned,
			"Nova conquista!",
			fmt.Sprintf("Você conquistou o badge %q.", b.BadgeName),
			map[string]any{"badge_id": b.BadgeID, "badge_code": b.BadgeCode},
		); err != nil {
			return nil, err
		}

		if b.BadgeXPReward > 0 {
			badgeID := b.BadgeID
			if _, err := pointService.AwardXP(tx, userID, pointService.Award{
				Points:   b.BadgeXPReward,
				Source:   constants.PointSourceBadge,
				SourceID: &badgeID,
			}); err != nil {
				return nil, err
			}
		}
		awarded = append(awarded, b)
	}
	return awarded, nil
}

// ListWithEarned returns every badge with the caller's award time, if earned.
func ListWithEarned(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]dto.BadgeRow, error) {
	var rows []dto.BadgeRow
	err := db.WithContext(ctx).
		Table("badges").
		Select("badges.*, ub.user_badge_awarded_at AS awarded_at").
		Joins("LEFT JOIN user_badges ub ON ub.user_badge_badge_id = badges.badge_id AND ub.user_badge_user_id = ?", userID).
		Order("badges.badge_criteria ASC, badges.badge_threshold ASC").
		Scan(&rows).Error
	return rows, err
}
