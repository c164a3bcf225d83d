package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequest struct {
	MentorID uuid.UUID `json:"mentor_id" validate:"required"`
	Topic    string    `json:"topic" validate:"required,min=3,max=150"`
	Message  *string   `json:"message" validate:"omitempty,max=2000"`
}

type MentorRow struct {
	ProfileID         uuid.UUID `gorm:"column:profile_id" json:"id"`
	ProfileFullName   string    `gorm:"column:profile_full_name" json:"full_name"`
	ProfileDepartment *string   `gorm:"column:profile_department" json:"department,omitempty"`
	ProfileJobTitle   *string   `gorm:"column:profile_job_title" json:"job_title,omitempty"`
	ProfileAvatarURL  *string   `gorm:"column:profile_avatar_url" json:"avatar_url,omitempty"`
	ProfileBio        *string   `gorm:"column:profile_bio" json:"bio,omitempty"`
}

// RequestRow is a request joined with both parties' names.
type RequestRow struct {
	ID          uuid.UUID  `gorm:"column:mentorship_request_id" json:"id"`
	MenteeID    uuid.UUID  `gorm:"column:mentorship_request_mentee_id" json:"mentee_id"`
	MenteeName  string     `gorm:"column:mentee_name" json:"mentee_name"`
	MentorID    uuid.UUID  `gorm:"column:mentorship_request_mentor_id" json:"mentor_id"`
	MentorName  string     `gorm:"column:mentor_name" json:"mentor_name"`
	Topic       string     `gorm:"column:mentorship_request_topic" json:"topic"`
	Message     *string    `gorm:"column:mentorship_request_message" json:"message,omitempty"`
	Status      string     `gorm:"column:mentorship_request_status" json:"status"`
	RespondedAt *time.Time `gorm:"column:mentorship_request_responded_at" json:"responded_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
}
