package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/notifications/model"
)

// Notify stores one notification for userID. tx may be a transaction.
func Notify(tx *gorm.DB, userID uuid.UUID, kind, title, body string, data map[string]any) error {
	n := model.NotificationModel{
		NotificationUserID: userID,
		NotificationType:   kind,
		NotificationTitle:  title,
		NotificationBody:   body,
	}
	if len(data) > 0 {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		n.NotificationData = datatypes.JSON(raw)
	}
	return tx.Create(&n).Error
}

type ListFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

func List(ctx context.Context, db *gorm.DB, userID uuid.UUID, f ListFilter) ([]model.NotificationModel, int64, error) {
	q := db.WithContext(ctx).Model(&model.NotificationModel{}).Where("notification_user_id = ?", userID)
	if f.UnreadOnly {
		q = q.Where("notification_read_at IS NULL")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.NotificationModel
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&rows).Error
	return rows, total, err
}

func UnreadCount(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read_at IS NULL", userID).
		Count(&n).Error
	return n, err
}

// MarkRead reports false when the notification does not belong to userID.
func MarkRead(ctx context.Context, db *gorm.DB, userID, id uuid.UUID, now time.Time) (bool, error) {
	res := db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Update("notification_read_at", gorm.Expr("COALESCE(notification_read_at, ?)", now))
	return res.RowsAffected > 0, res.Error
}

func MarkAllRead(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read_at IS NULL", userID).
		Update("notification_read_at", now)
	return res.RowsAffected, res.Error
}

func Delete(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (bool, error) {
	res := db.WithContext(ctx).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Delete(&model.NotificationModel{})
	return res.RowsAffected > 0, res.Error
}
