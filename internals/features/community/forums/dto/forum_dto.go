package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"capacitajun_backend/internals/features/community/forums/model"
)

const MaxTags = 5

type PostRequest struct {
	Title   string   `json:"title" validate:"required,min=3,max=200"`
	Content string   `json:"content" validate:"required,min=1,max=20000"`
	Tags    []string `json:"tags" validate:"omitempty,max=10,dive,max=30"`
}

type ReplyRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type PinRequest struct {
	Pinned bool `json:"pinned"`
}

// NormalizeTags lowercases, trims and dedups tags, keeping the first MaxTags.
func NormalizeTags(in []string) pq.StringArray {
	out := pq.StringArray{}
	seen := map[string]struct{}{}
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "#")))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}

func (r PostRequest) Apply(m *model.ForumPostModel) {
	m.ForumPostTitle = strings.TrimSpace(r.Title)
	m.ForumPostContent = strings.TrimSpace(r.Content)
	m.ForumPostTags = NormalizeTags(r.Tags)
}

// PostRow is one list row joined with the author name and reply count.
type PostRow struct {
	ForumPostID       uuid.UUID      `gorm:"column:forum_post_id" json:"id"`
	ForumPostAuthorID uuid.UUID      `gorm:"column:forum_post_author_id" json:"author_id"`
	AuthorName        string         `gorm:"column:author_name" json:"author_name"`
	ForumPostTitle    string         `gorm:"column:forum_post_title" json:"title"`
	ForumPostContent  string         `gorm:"column:forum_post_content" json:"content"`
	ForumPostTags     pq.StringArray `gorm:"column:forum_post_tags;type:text[]" json:"tags"`
	ForumPostIsPinned bool           `gorm:"column:forum_post_is_pinned" json:"pinned"`
	ReplyCount        int64          `gorm:"column:reply_count" json:"reply_count"`
	CreatedAt         time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

type ReplyRow struct {
	ForumReplyID       uuid.UUID `gorm:"column:forum_reply_id" json:"id"`
	ForumReplyAuthorID uuid.UUID `gorm:"column:forum_reply_author_id" json:"author_id"`
	AuthorName         string    `gorm:"column:author_name" json:"author_name"`
	ForumReplyContent  string    `gorm:"column:forum_reply_content" json:"content"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
}

type PostDetail struct {
	PostRow
	Replies []ReplyRow `json:"replies"`
}
