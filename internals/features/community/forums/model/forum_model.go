package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ForumPostModel struct {
	ForumPostID       uuid.UUID      `gorm:"column:forum_post_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"forum_post_id"`
	ForumPostAuthorID uuid.UUID      `gorm:"column:forum_post_author_id;type:uuid;not null;index" json:"forum_post_author_id"`
	ForumPostTitle    string         `gorm:"column:forum_post_title;type:varchar(200);not null" json:"forum_post_title"`
	ForumPostContent  string         `gorm:"column:forum_post_content;type:text;not null" json:"forum_post_content"`
	ForumPostTags     pq.StringArray `gorm:"column:forum_post_tags;type:text[];not null;default:'{}'" json:"forum_post_tags"`
	ForumPostIsPinned bool           `gorm:"column:forum_post_is_pinned;not null;default:false" json:"forum_post_is_pinned"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ForumPostModel) TableName() string {
	return "forum_posts"
}

type ForumReplyModel struct {
	ForumReplyID       uuid.UUID      `gorm:"column:forum_reply_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"forum_reply_id"`
	ForumReplyPostID   uuid.UUID      `gorm:"column:forum_reply_post_id;type:uuid;not null;index" json:"forum_reply_post_id"`
	ForumReplyAuthorID uuid.UUID      `gorm:"column:forum_reply_author_id;type:uuid;not null" json:"forum_reply_author_id"`
	ForumReplyContent  string         `gorm:"column:forum_reply_content;type:text;not null" json:"forum_reply_content"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ForumReplyModel) TableName() string {
	return "forum_replies"
}
