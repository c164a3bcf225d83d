package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is one row per account; profile_id equals users.id.
type ProfileModel struct {
	ProfileID         uuid.UUID `gorm:"column:profile_id;type:uuid;primaryKey" json:"profile_id"`
	ProfileFullName   string    `gorm:"column:profile_full_name;size:120;not null" json:"profile_full_name"`
	ProfileDepartment *string   `gorm:"column:profile_department;size:120" json:"profile_department,omitempty"`
	ProfileJobTitle   *string   `gorm:"column:profile_job_title;size:120" json:"profile_job_title,omitempty"`
	ProfileAvatarURL  *string   `gorm:"column:profile_avatar_url" json:"profile_avatar_url,omitempty"`
	ProfileBio        *string   `gorm:"column:profile_bio" json:"profile_bio,omitempty"`
	ProfileRole       string    `gorm:"column:profile_role;type:varchar(20);not null;default:'learner'" json:"profile_role"`
	ProfileIsMentor   bool      `gorm:"column:profile_is_mentor;not null;default:false" json:"profile_is_mentor"`
	ProfileIsActive   bool      `gorm:"column:profile_is_active;not null;default:true" json:"profile_is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
