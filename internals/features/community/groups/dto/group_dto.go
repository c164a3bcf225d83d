package dto

import (
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/community/groups/model"
)

type CreateGroupRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type MessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
}

type GroupRow struct {
	StudyGroupID          uuid.UUID `gorm:"column:study_group_id" json:"id"`
	StudyGroupName        string    `gorm:"column:study_group_name" json:"name"`
	StudyGroupDescription *string   `gorm:"column:study_group_description" json:"description,omitempty"`
	StudyGroupOwnerID     uuid.UUID `gorm:"column:study_group_owner_id" json:"owner_id"`
	MemberCount           int64     `gorm:"column:member_count" json:"member_count"`
	IsMember              bool      `gorm:"column:is_member" json:"is_member"`
	CreatedAt             time.Time `gorm:"column:created_at" json:"created_at"`
}

// MessageRow is both the list item and the realtime payload.
type MessageRow struct {
	ID         uuid.UUID `gorm:"column:group_message_id" json:"id"`
	GroupID    uuid.UUID `gorm:"column:group_message_group_id" json:"group_id"`
	AuthorID   uuid.UUID `gorm:"column:group_message_author_id" json:"author_id"`
	AuthorName string    `gorm:"column:author_name" json:"author_name"`
	Content    string    `gorm:"column:group_message_content" json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func ToMessageRow(m model.GroupMessageModel, authorName string) MessageRow {
	return MessageRow{
		ID:         m.GroupMessageID,
		GroupID:    m.GroupMessageGroupID,
		AuthorID:   m.GroupMessageAuthorID,
		AuthorName: authorName,
		Content:    m.GroupMessageContent,
		CreatedAt:  m.CreatedAt,
	}
}
