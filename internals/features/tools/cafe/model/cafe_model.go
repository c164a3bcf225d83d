package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CafePresetModel is a saved sound mix. A nil owner marks a built-in preset.
type CafePresetModel struct {
	CafePresetID           uuid.UUID      `gorm:"column:cafe_preset_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"cafe_preset_id"`
	CafePresetOwnerID      *uuid.UUID     `gorm:"column:cafe_preset_owner_id;type:uuid;index" json:"cafe_preset_owner_id,omitempty"`
	CafePresetName         string         `gorm:"column:cafe_preset_name;type:varchar(80);not null" json:"cafe_preset_name"`
	CafePresetMix          datatypes.JSON `gorm:"column:cafe_preset_mix;type:jsonb;not null" json:"cafe_preset_mix"`
	CafePresetMasterVolume float64        `gorm:"column:cafe_preset_master_volume;not null;default:0.8" json:"cafe_preset_master_volume"`
	CreatedAt              time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (CafePresetModel) TableName() string {
	return "cafe_presets"
}

type CafeSessionModel struct {
	CafeSessionID           uuid.UUID  `gorm:"column:cafe_session_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"cafe_session_id"`
	CafeSessionUserID       uuid.UUID  `gorm:"column:cafe_session_user_id;type:uuid;not null;index" json:"cafe_session_user_id"`
	CafeSessionPresetID     *uuid.UUID `gorm:"column:cafe_session_preset_id;type:uuid" json:"cafe_session_preset_id,omitempty"`
	CafeSessionStartedAt    time.Time  `gorm:"column:cafe_session_started_at;not null" json:"cafe_session_started_at"`
	CafeSessionEndedAt      *time.Time `gorm:"column:cafe_session_ended_at" json:"cafe_session_ended_at,omitempty"`
	CafeSessionFocusMinutes int        `gorm:"column:cafe_session_focus_minutes;not null;default:0" json:"cafe_session_focus_minutes"`
}

func (CafeSessionModel) TableName() string {
	return "cafe_sessions"
}
