package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MemberRoleOwner  = "owner"
	MemberRoleMember = "member"
)

type StudyGroupModel struct {
	StudyGroupID          uuid.UUID      `gorm:"column:study_group_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"study_group_id"`
	StudyGroupName        string         `gorm:"column:study_group_name;type:varchar(120);not null" json:"study_group_name"`
	StudyGroupDescription *string        `gorm:"column:study_group_description;type:text" json:"study_group_description,omitempty"`
	StudyGroupOwnerID     uuid.UUID      `gorm:"column:study_group_owner_id;type:uuid;not null" json:"study_group_owner_id"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (StudyGroupModel) TableName() string {
	return "study_groups"
}

type GroupMemberModel struct {
	GroupMemberID      uuid.UUID `gorm:"column:group_member_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"group_member_id"`
	GroupMemberGroupID uuid.UUID `gorm:"column:group_member_group_id;type:uuid;not null;uniqueIndex:uq_group_member" json:"group_member_group_id"`
	GroupMemberUserID  uuid.UUID `gorm:"column:group_member_user_id;type:uuid;not null;uniqueIndex:uq_group_member" json:"group_member_user_id"`
	GroupMemberRole    string    `gorm:"column:group_member_role;type:varchar(10);not null;default:'member'" json:"group_member_role"`
	JoinedAt           time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

func (GroupMemberModel) TableName() string {
	return "group_members"
}

type GroupMessageModel struct {
	GroupMessageID       uuid.UUID `gorm:"column:group_message_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"group_message_id"`
	GroupMessageGroupID  uuid.UUID `gorm:"column:group_message_group_id;type:uuid;not null;index:idx_group_messages_group_created,priority:1" json:"group_message_group_id"`
	GroupMessageAuthorID uuid.UUID `gorm:"column:group_message_author_id;type:uuid;not null" json:"group_message_author_id"`
	GroupMessageContent  string    `gorm:"column:group_message_content;type:text;not null" json:"group_message_content"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime;index:idx_group_messages_group_created,priority:2" json:"created_at"`
}

func (GroupMessageModel) TableName() string {
	return "group_messages"
}
