package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"capacitajun_backend/internals/features/notifications/model"
)

type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      datatypes.JSON `json:"data,omitempty"`
	Read      bool           `json:"read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func ToNotificationResponse(m model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		ID:        m.NotificationID,
		Type:      m.NotificationType,
		Title:     m.NotificationTitle,
		Body:      m.NotificationBody,
		Data:      m.NotificationData,
		Read:      m.NotificationReadAt != nil,
		ReadAt:    m.NotificationReadAt,
		CreatedAt: m.CreatedAt,
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToNotificationResponse(m))
	}
	return out
}
