package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
)

type MentorshipRequestModel struct {
	MentorshipRequestID          uuid.UUID  `gorm:"column:mentorship_request_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"mentorship_request_id"`
	MentorshipRequestMenteeID    uuid.UUID  `gorm:"column:mentorship_request_mentee_id;type:uuid;not null;index" json:"mentorship_request_mentee_id"`
	MentorshipRequestMentorID    uuid.UUID  `gorm:"column:mentorship_request_mentor_id;type:uuid;not null;index" json:"mentorship_request_mentor_id"`
	MentorshipRequestTopic       string     `gorm:"column:mentorship_request_topic;type:varchar(150);not null" json:"mentorship_request_topic"`
	MentorshipRequestMessage     *string    `gorm:"column:mentorship_request_message;type:text" json:"mentorship_request_message,omitempty"`
	MentorshipRequestStatus      string     `gorm:"column:mentorship_request_status;type:varchar(12);not null;default:'pending'" json:"mentorship_request_status"`
	MentorshipRequestRespondedAt *time.Time `gorm:"column:mentorship_request_responded_at" json:"mentorship_request_responded_at,omitempty"`
	CreatedAt                    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MentorshipRequestModel) TableName() string {
	return "mentorship_requests"
}
