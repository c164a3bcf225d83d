package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/community/forums/dto"
	"capacitajun_backend/internals/features/community/forums/model"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrReplyNotFound = errors.New("reply not found")
	ErrNotAuthor     = errors.New("not the author")
)

type ListFilter struct {
	Tag   string
	Query string
}

const postColumns = `p.forum_post_id, p.forum_post_author_id, COALESCE(pr.profile_full_name, '') AS author_name,
p.forum_post_title, p.forum_post_content, p.forum_post_tags, p.forum_post_is_pinned,
p.created_at, p.updated_at,
(SELECT COUNT(*) FROM forum_replies r WHERE r.forum_reply_post_id = p.forum_post_id AND r.deleted_at IS NULL) AS reply_count`

func basePosts(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("forum_posts AS p").
		Joins("LEFT JOIN profiles pr ON pr.profile_id = p.forum_post_author_id").
		Where("p.deleted_at IS NULL")
}

func applyFilter(q *gorm.DB, f ListFilter) *gorm.DB {
	if tag := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(f.Tag, "#"))); tag != "" {
		q = q.Where("? = ANY(p.forum_post_tags)", tag)
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("(p.forum_post_title ILIKE ? OR p.forum_post_content ILIKE ?)", like, like)
	}
	return q
}

// ListPosts returns pinned posts first, then newest.
func ListPosts(ctx context.Context, db *gorm.DB, f ListFilter, limit, offset int) ([]dto.PostRow, int64, error) {
	var total int64
	if err := applyFilter(basePosts(ctx, db), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []dto.PostRow{}
	err := applyFilter(basePosts(ctx, db), f).
		Select(postColumns).
		Order("p.forum_post_is_pinned DESC, p.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}

func GetPost(ctx context.Context, db *gorm.DB, id uuid.UUID) (*dto.PostDetail, error) {
	var rows []dto.PostRow
	if err := basePosts(ctx, db).Select(postColumns).
		Where("p.forum_post_id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrPostNotFound
	}

	replies := []dto.ReplyRow{}
	err := db.WithContext(ctx).
		Table("forum_replies AS r").
		Select("r.forum_reply_id, r.forum_reply_author_id, COALESCE(pr.profile_full_name, '') AS author_name, r.forum_reply_content, r.created_at").
		Joins("LEFT JOIN profiles pr ON pr.profile_id = r.forum_reply_author_id").
		Where("r.forum_reply_post_id = ? AND r.deleted_at IS NULL", id).
		Order("r.created_at ASC").
		Scan(&replies).Error
	if err != nil {
		return nil, err
	}
	return &dto.PostDetail{PostRow: rows[0], Replies: replies}, nil
}

func loadPost(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.ForumPostModel, error) {
	var p model.ForumPostModel
	if err := db.WithContext(ctx).Where("forum_post_id = ?", id).Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

func CreatePost(ctx context.Context, db *gorm.DB, author uuid.UUID, req dto.PostRequest) (*model.ForumPostModel, error) {
	p := model.ForumPostModel{ForumPostAuthorID: author}
	req.Apply(&p)
	if err := db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePost is allowed for the author only.
func UpdatePost(ctx context.Context, db *gorm.DB, actor, id uuid.UUID, req dto.PostRequest) (*model.ForumPostModel, error) {
	p, err := loadPost(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if p.ForumPostAuthorID != actor {
		return nil, ErrNotAuthor
	}
	req.Apply(p)
	err = db.WithContext(ctx).Model(&model.ForumPostModel{}).
		Where("forum_post_id = ?", id).
		Updates(map[string]any{
			"forum_post_title":   p.ForumPostTitle,
			"forum_post_content": p.ForumPostContent,
			"forum_post_tags":    p.ForumPostTags,
		}).Error
	return p, err
}

// DeletePost soft-deletes; admins may delete any post.
func DeletePost(ctx context.Context, db *gorm.DB, actor uuid.UUID, isAdmin bool, id uuid.UUID) error {
	p, err := loadPost(ctx, db, id)
	if err != nil {
		return err
	}
	if !isAdmin && p.ForumPostAuthorID != actor {
		return ErrNotAuthor
	}
	return db.WithContext(ctx).Delete(&model.ForumPostModel{}, "forum_post_id = ?", id).Error
}

func SetPinned(ctx context.Context, db *gorm.DB, id uuid.UUID, pinned bool) error {
	res := db.WithContext(ctx).Model(&model.ForumPostModel{}).
		Where("forum_post_id = ?", id).
		Update("forum_post_is_pinned", pinned)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func CreateReply(ctx context.Context, db *gorm.DB, author, postID uuid.UUID, content string) (*model.ForumReplyModel, error) {
	if _, err := loadPost(ctx, db, postID); err != nil {
		return nil, err
	}
	r := model.ForumReplyModel{
		ForumReplyPostID:   postID,
		ForumReplyAuthorID: author,
		ForumReplyContent:  strings.TrimSpace(content),
	}
	if err := db.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func DeleteReply(ctx context.Context, db *gorm.DB, actor uuid.UUID, isAdmin bool, id uuid.UUID) error {
	var r model.ForumReplyModel
	if err := db.WithContext(ctx).Where("forum_reply_id = ?", id).Take(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReplyNotFound
		}
		return err
	}
	if !isAdmin && r.ForumReplyAuthorID != actor {
		return ErrNotAuthor
	}
	return db.WithContext(ctx).Delete(&model.ForumReplyModel{}, "forum_reply_id = ?", id).Error
}
