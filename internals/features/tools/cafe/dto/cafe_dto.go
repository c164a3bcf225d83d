package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"capacitajun_backend/internals/features/tools/cafe/model"
)

// MixTrack is one ambient sound channel of the client-side audio graph.
type MixTrack struct {
	Sound  string  `json:"sound" validate:"required,oneof=rain coffee_shop fireplace lofi birds waves white_noise keyboard"`
	Volume float64 `json:"volume" validate:"gte=0,lte=1"`
	Pan    float64 `json:"pan" validate:"gte=-1,lte=1"`
	Muted  bool    `json:"muted"`
}

type PresetRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=80"`
	Mix          []MixTrack `json:"mix" validate:"required,min=1,max=8,dive"`
	MasterVolume float64    `json:"master_volume" validate:"gte=0,lte=1"`
}

// MixJSON rejects duplicate sounds and encodes the mix for the jsonb column.
func (r PresetRequest) MixJSON() (datatypes.JSON, bool) {
	seen := map[string]bool{}
	for _, t := range r.Mix {
		if seen[t.Sound] {
			return nil, false
		}
		seen[t.Sound] = true
	}
	raw, err := sonic.Marshal(r.Mix)
	if err != nil {
		return nil, false
	}
	return datatypes.JSON(raw), true
}

type StartSessionRequest struct {
	PresetID *uuid.UUID `json:"preset_id"`
}

type PresetResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	BuiltIn      bool       `json:"built_in"`
	Mix          []MixTrack `json:"mix"`
	MasterVolume float64    `json:"master_volume"`
}

type SessionResponse struct {
	ID           uuid.UUID  `json:"id"`
	PresetID     *uuid.UUID `json:"preset_id,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	FocusMinutes int        `json:"focus_minutes"`
}

type Stats struct {
	Sessions        int64 `json:"sessions" gorm:"column:sessions"`
	TotalMinutes    int64 `json:"total_minutes" gorm:"column:total_minutes"`
	LastWeekMinutes int64 `json:"last_week_minutes" gorm:"column:last_week_minutes"`
}

func ToPresetResponse(m model.CafePresetModel) PresetResponse {
	mix := []MixTrack{}
	_ = sonic.Unmarshal(m.CafePresetMix, &mix)
	return PresetResponse{
		ID:           m.CafePresetID,
		Name:         m.CafePresetName,
		BuiltIn:      m.CafePresetOwnerID == nil,
		Mix:          mix,
		MasterVolume: m.CafePresetMasterVolume,
	}
}

func ToPresetResponses(ms []model.CafePresetModel) []PresetResponse {
	out := make([]PresetResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPresetResponse(m))
	}
	return out
}

func ToSessionResponse(m model.CafeSessionModel) SessionResponse {
	return SessionResponse{
		ID:           m.CafeSessionID,
		PresetID:     m.CafeSessionPresetID,
		StartedAt:    m.CafeSessionStartedAt,
		EndedAt:      m.CafeSessionEndedAt,
		FocusMinutes: m.CafeSessionFocusMinutes,
	}
}
