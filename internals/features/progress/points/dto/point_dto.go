package dto

import (
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/progress/points/model"
)

type PointLogResponse struct {
	ID         uint       `json:"id"`
	Points     int        `json:"points"`
	SourceType string     `json:"source_type"`
	SourceID   *uuid.UUID `json:"source_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToPointLogResponseList(logs []model.UserPointLog) []PointLogResponse {
	out := make([]PointLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, PointLogResponse{
			ID:         l.UserPointLogID,
			Points:     l.UserPointLogPoints,
			SourceType: l.UserPointLogSourceType,
			SourceID:   l.UserPointLogSourceID,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out
}
