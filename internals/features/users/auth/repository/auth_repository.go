package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "capacitajun_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

// LoginRow is the credential + profile projection read at login.
type LoginRow struct {
	ID              uuid.UUID
	Email           string
	Password        string
	ProfileFullName string
	ProfileRole     string
	ProfileIsActive bool
}

func FindLoginRowByEmail(ctx context.Context, db *gorm.DB, email string) (*LoginRow, error) {
	var row LoginRow
	err := db.WithContext(ctx).
		Table("users").
		Select("users.id, users.email, users.password, profiles.profile_full_name, profiles.profile_role, profiles.profile_is_active").
		Joins("JOIN profiles ON profiles.profile_id = users.id").
		Where("LOWER(users.email) = ? AND users.deleted_at IS NULL", strings.ToLower(strings.TrimSpace(email))).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(tx *gorm.DB, user *authModel.UserModel) error {
	return tx.Create(user).Error
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, passwordHash string) error {
	return db.WithContext(ctx).
		Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", passwordHash).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken is idempotent: revoking the same token twice is a no-op.
func BlacklistToken(ctx context.Context, db *gorm.DB, tokenHash string, ttl time.Duration) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklist{
			Token:     tokenHash,
			ExpiredAt: time.Now().UTC().Add(ttl),
		}).Error
}

// CleanupExpiredBlacklist hard-deletes entries that expired before now-retention.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, retention time.Duration) (int64, error) {
	res := db.WithContext(ctx).
		Unscoped().
		Where("expired_at < ?", time.Now().UTC().Add(-retention)).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
