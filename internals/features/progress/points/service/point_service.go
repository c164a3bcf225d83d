package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	levelService "capacitajun_backend/internals/features/progress/level_rank/service"
	userLogPoint "capacitajun_backend/internals/features/progress/points/model"
	userProgress "capacitajun_backend/internals/features/progress/progress/model"
	notificationService "capacitajun_backend/internals/features/notifications/service"
	"capacitajun_backend/internals/helpers/logger"
	"capacitajun_backend/internals/helpers/metrics"
)

type Award struct {
	Points   int
	Source   string
	SourceID *uuid.UUID
}

type AwardResult struct {
	TotalXP       int
	Level         int
	PreviousLevel int
}

func (r AwardResult) LeveledUp() bool {
	return r.Level > r.PreviousLevel
}

// AwardXP writes one ledger row, bumps user_progress.total_xp and recomputes the level.
// The user_progress row must already exist. Call it inside the caller's transaction.
func AwardXP(tx *gorm.DB, userID uuid.UUID, a Award) (AwardResult, error) {
	if a.Points <= 0 {
		return AwardResult{}, fmt.Errorf("award points must be positive, got %d", a.Points)
	}

	entry := userLogPoint.UserPointLog{
		UserPointLogUserID:     userID,
		UserPointLogPoints:     a.Points,
		UserPointLogSourceType: a.Source,
		UserPointLogSourceID:   a.SourceID,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return AwardResult{}, err
	}

	if err := tx.Model(&userProgress.UserProgress{}).
		Where("user_progress_user_id = ?", userID).
		Updates(map[string]interface{}{
			"user_progress_total_xp": gorm.Expr("user_progress_total_xp + ?", a.Points),
			"last_updated":           time.Now(),
		}).Error; err != nil {
		return AwardResult{}, err
	}

	var progress userProgress.UserProgress
	if err := tx.Where("user_progress_user_id = ?", userID).First(&progress).Error; err != nil {
		return AwardResult{}, err
	}

	res := AwardResult{
		TotalXP:       progress.UserProgressTotalXP,
		Level:         progress.UserProgressLevel,
		PreviousLevel: progress.UserProgressLevel,
	}

	level, err := levelService.ResolveLevel(tx, progress.UserProgressTotalXP)
	if err != nil {
		return AwardResult{}, err
	}
	if level != progress.UserProgressLevel {
		if err := tx.Model(&userProgress.UserProgress{}).
			Where("user_progress_user_id = ?", userID).
			Update("user_progress_level", level).Error; err != nil {
			return AwardResult{}, err
		}
		res.Level = level
	}

	if res.LeveledUp() {
		logger.WithUserID(userID.String()).WithFields(logrus.Fields{
			"from": res.PreviousLevel,
			"to":   res.Level,
		}).Info("level up")

		if err := notificationService.Notify(tx, userID, constants.NotificationLevelUp,
			"Subiu de nível!",
			fmt.Sprintf("Parabéns! Você alcançou o nível %d.", res.Level),
			map[string]any{"level": res.Level, "total_xp": res.TotalXP},
		); err != nil {
			return AwardResult{}, err
		}
	}

	metrics.ObserveXP(a.Source, a.Points)
	return res, nil
}

type HistoryFilter struct {
	Source string
	Limit  int
	Offset int
}

func History(tx *gorm.DB, userID uuid.UUID, f HistoryFilter) ([]userLogPoint.UserPointLog, int64, error) {
	q := tx.Model(&userLogPoint.UserPointLog{}).Where("user_point_log_user_id = ?", userID)
	if f.Source != "" {
		q = q.Where("user_point_log_source_type = ?", f.Source)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []userLogPoint.UserPointLog
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&logs).Error
	return logs, total, err
}
