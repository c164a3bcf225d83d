package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationModel struct {
	NotificationID     uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationType   string         `gorm:"column:notification_type;type:varchar(40);not null" json:"notification_type"`
	NotificationTitle  string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationBody   string         `gorm:"column:notification_body;type:text" json:"notification_body"`
	NotificationData   datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data,omitempty"`
	NotificationReadAt *time.Time     `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
