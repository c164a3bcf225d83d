package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/features/tools/cafe/dto"
	"capacitajun_backend/internals/features/tools/cafe/model"
)

// MaxSessionMinutes caps a forgotten session.
const MaxSessionMinutes = 12 * 60

var ErrAlreadyFinished = errors.New("session already finished")

// VisiblePresets returns built-ins first, then the user's own presets.
func VisiblePresets(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.CafePresetModel, error) {
	var rows []model.CafePresetModel
	err := db.WithContext(ctx).
		Where("cafe_preset_owner_id IS NULL OR cafe_preset_owner_id = ?", userID).
		Order("cafe_preset_owner_id NULLS FIRST, cafe_preset_name ASC").
		Find(&rows).Error
	return rows, err
}

// OwnedPreset loads a preset the user may edit. Built-ins are never owned.
func OwnedPreset(tx *gorm.DB, userID, presetID uuid.UUID) (model.CafePresetModel, error) {
	var m model.CafePresetModel
	err := tx.Where("cafe_preset_id = ? AND cafe_preset_owner_id = ?", presetID, userID).Take(&m).Error
	return m, err
}

// FocusMinutes is the whole minutes between start and end, clamped to [0, MaxSessionMinutes].
func FocusMinutes(start, end time.Time) int {
	m := int(end.Sub(start) / time.Minute)
	if m < 0 {
		return 0
	}
	if m > MaxSessionMinutes {
		return MaxSessionMinutes
	}
	return m
}

func StartSession(ctx context.Context, db *gorm.DB, userID uuid.UUID, presetID *uuid.UUID, now time.Time) (model.CafeSessionModel, error) {
	m := model.CafeSessionModel{
		CafeSessionUserID:    userID,
		CafeSessionPresetID:  presetID,
		CafeSessionStartedAt: now,
	}
	return m, db.WithContext(ctx).Create(&m).Error
}

func FinishSession(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID, now time.Time) (model.CafeSessionModel, error) {
	var m model.CafeSessionModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cafe_session_id = ? AND cafe_session_user_id = ?", sessionID, userID).
			Take(&m).Error; err != nil {
			return err
		}
		if m.CafeSessionEndedAt != nil {
			return ErrAlreadyFinished
		}
		m.CafeSessionEndedAt = &now
		m.CafeSessionFocusMinutes = FocusMinutes(m.CafeSessionStartedAt, now)
		return tx.Model(&m).Updates(map[string]any{
			"cafe_session_ended_at":      now,
			"cafe_session_focus_minutes": m.CafeSessionFocusMinutes,
		}).Error
	})
	return m, err
}

func SessionStats(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) (dto.Stats, error) {
	var s dto.Stats
	err := db.WithContext(ctx).
		Model(&model.CafeSessionModel{}).
		Select(`COUNT(*) AS sessions,
			COALESCE(SUM(cafe_session_focus_minutes), 0) AS total_minutes,
			COALESCE(SUM(cafe_session_focus_minutes) FILTER (WHERE cafe_session_started_at >= ?), 0) AS last_week_minutes`,
			now.AddDate(0, 0, -7)).
		Where("cafe_session_user_id = ? AND cafe_session_ended_at IS NOT NULL", userID).
		Scan(&s).Error
	return s, err
}
