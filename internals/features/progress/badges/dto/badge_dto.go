package dto

import (
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/progress/badges/model"
)

type BadgeRequest struct {
	Code        string `json:"code" validate:"required,max=60"`
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=255"`
	Criteria    string `json:"criteria" validate:"required,oneof=lessons_completed streak_days total_xp"`
	Threshold   int    `json:"threshold" validate:"required,min=1"`
	XPReward    int    `json:"xp_reward" validate:"min=0"`
}

func (r BadgeRequest) Apply(m *model.BadgeModel) {
	m.BadgeCode = r.Code
	m.BadgeName = r.Name
	m.BadgeDescription = r.Description
	m.BadgeIcon = r.Icon
	m.BadgeCriteria = r.Criteria
	m.BadgeThreshold = r.Threshold
	m.BadgeXPReward = r.XPReward
}

type BadgeResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Criteria    string     `json:"criteria"`
	Threshold   int        `json:"threshold"`
	XPReward    int        `json:"xp_reward"`
	Earned      bool       `json:"earned"`
	AwardedAt   *time.Time `json:"awarded_at,omitempty"`
}

// BadgeRow is a badge joined with the caller's award, if any.
type BadgeRow struct {
	model.BadgeModel
	AwardedAt *time.Time `gorm:"column:awarded_at"`
}

func ToBadgeResponse(m model.BadgeModel) BadgeResponse {
	return BadgeResponse{
		ID:          m.BadgeID,
		Code:        m.BadgeCode,
		Name:        m.BadgeName,
		Description: m.BadgeDescription,
		Icon:        m.BadgeIcon,
		Criteria:    m.BadgeCriteria,
		Threshold:   m.BadgeThreshold,
		XPReward:    m.BadgeXPReward,
	}
}

func ToBadgeRowResponses(rows []BadgeRow) []BadgeResponse {
	out := make([]BadgeResponse, 0, len(rows))
	for _, r := range rows {
		resp := ToBadgeResponse(r.BadgeModel)
		resp.Earned = r.AwardedAt != nil
		resp.AwardedAt = r.AwardedAt
		out = append(out, resp)
	}
	return out
}
