package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/features/progress/progress/model"
)

// CreateInitialUserProgress inserts the zeroed counters row; a second call is a no-op.
func CreateInitialUserProgress(tx *gorm.DB, userID uuid.UUID) error {
	progress := model.UserProgress{
		UserProgressUserID: userID,
		UserProgressLevel:  1,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_progress_user_id"}},
		DoNothing: true,
	}).Create(&progress).Error
}

// EnsureUserProgress creates the row when missing and returns it locked for update.
func EnsureUserProgress(tx *gorm.DB, userID uuid.UUID) (model.UserProgress, error) {
	if err := CreateInitialUserProgress(tx, userID); err != nil {
		return model.UserProgress{}, err
	}
	var p model.UserProgress
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_progress_user_id = ?", userID).
		Take(&p).Error
	return p, err
}

// GetUserProgress returns the counters, or a zero row when the user has none yet.
func GetUserProgress(ctx context.Context, db *gorm.DB, userID uuid.UUID) (model.UserProgress, error) {
	var p model.UserProgress
	res := db.WithContext(ctx).Where("user_progress_user_id = ?", userID).Limit(1).Find(&p)
	if res.Error != nil {
		return model.UserProgress{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.UserProgress{UserProgressUserID: userID, UserProgressLevel: 1}, nil
	}
	return p, nil
}
