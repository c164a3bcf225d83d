package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/features/community/groups/dto"
	"capacitajun_backend/internals/features/community/groups/model"
	"capacitajun_backend/internals/helpers/logger"
	"capacitajun_backend/internals/helpers/pubsub"
)

const (
	DefaultMessageLimit = 50
	MaxMessageLimit     = 200
)

var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrNotMember        = errors.New("not a group member")
	ErrOwnerCannotLeave = errors.New("owner cannot leave the group")
)

// Channel names the realtime channel of a group.
func Channel(groupID uuid.UUID) string {
	return fmt.Sprintf("group:%s:messages", groupID)
}

// ClampLimit applies the default and the upper bound of the initial fetch.
func ClampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultMessageLimit
	case n > MaxMessageLimit:
		return MaxMessageLimit
	default:
		return n
	}
}

type Service struct {
	DB     *gorm.DB
	Broker pubsub.Broker
}

func New(db *gorm.DB, broker pubsub.Broker) *Service {
	return &Service{DB: db, Broker: broker}
}

func (s *Service) ListGroups(ctx context.Context, userID uuid.UUID, search string, limit, offset int) ([]dto.GroupRow, int64, error) {
	base := func() *gorm.DB {
		q := s.DB.WithContext(ctx).Table("study_groups AS g").Where("g.deleted_at IS NULL")
		if s := strings.TrimSpace(search); s != "" {
			q = q.Where("g.study_group_name ILIKE ?", "%"+s+"%")
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []dto.GroupRow{}
	err := base().
		Select(`g.study_group_id, g.study_group_name, g.study_group_description, g.study_group_owner_id, g.created_at,
(SELECT COUNT(*) FROM group_members m WHERE m.group_member_group_id = g.study_group_id) AS member_count,
EXISTS (SELECT 1 FROM group_members m WHERE m.group_member_group_id = g.study_group_id AND m.group_member_user_id = ?) AS is_member`, userID).
		Order("g.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}

// Create inserts the group and its owner membership in one transaction.
func (s *Service) Create(ctx context.Context, owner uuid.UUID, req dto.CreateGroupRequest) (*model.StudyGroupModel, error) {
	g := model.StudyGroupModel{
		StudyGroupName:        strings.TrimSpace(req.Name),
		StudyGroupDescription: req.Description,
		StudyGroupOwnerID:     owner,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&g).Error; err != nil {
			return err
		}
		return tx.Create(&model.GroupMemberModel{
			GroupMemberGroupID: g.StudyGroupID,
			GroupMemberUserID:  owner,
			GroupMemberRole:    model.MemberRoleOwner,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) group(ctx context.Context, id uuid.UUID) (*model.StudyGroupModel, error) {
	var g model.StudyGroupModel
	if err := s.DB.WithContext(ctx).Where("study_group_id = ?", id).Take(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Join is idempotent.
func (s *Service) Join(ctx context.Context, groupID, userID uuid.UUID) error {
	if _, err := s.group(ctx, groupID); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_member_group_id"}, {Name: "group_member_user_id"}},
			DoNothing: true,
		}).
		Create(&model.GroupMemberModel{
			GroupMemberGroupID: groupID,
			GroupMemberUserID:  userID,
			GroupMemberRole:    model.MemberRoleMember,
		}).Error
}

func (s *Service) Leave(ctx context.Context, groupID, userID uuid.UUID) error {
	g, err := s.group(ctx, groupID)
	if err != nil {
		return err
	}
	if g.StudyGroupOwnerID == userID {
		return ErrOwnerCannotLeave
	}
	res := s.DB.WithContext(ctx).
		Where("group_member_group_id = ? AND group_member_user_id = ?", groupID, userID).
		Delete(&model.GroupMemberModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotMember
	}
	return nil
}

// RequireMember returns ErrNotMember unless userID belongs to the group.
func (s *Service) RequireMember(ctx context.Context, groupID, userID uuid.UUID) error {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.GroupMemberModel{}).
		Where("group_member_group_id = ? AND group_member_user_id = ?", groupID, userID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotMember
	}
	return nil
}

// Messages returns the newest limit messages, oldest first.
func (s *Service) Messages(ctx context.Context, groupID, userID uuid.UUID, limit int) ([]dto.MessageRow, error) {
	if err := s.RequireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	rows := []dto.MessageRow{}
	err := s.DB.WithContext(ctx).
		Table("group_messages AS gm").
		Select("gm.group_message_id, gm.group_message_group_id, gm.group_message_author_id, COALESCE(pr.profile_full_name, '') AS author_name, gm.group_message_content, gm.created_at").
		Joins("LEFT JOIN profiles pr ON pr.profile_id = gm.group_message_author_id").
		Where("gm.group_message_group_id = ?", groupID).
		Order("gm.created_at DESC").
		Limit(ClampLimit(limit)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// Post stores the message and publishes the inserted row. A publish failure
// is logged; the message is already persisted.
func (s *Service) Post(ctx context.Context, groupID, userID uuid.UUID, authorName, content string) (*dto.MessageRow, error) {
	if err := s.RequireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	m := model.GroupMessageModel{
		GroupMessageGroupID:  groupID,
		GroupMessageAuthorID: userID,
		GroupMessageContent:  strings.TrimSpace(content),
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	row := dto.ToMessageRow(m, authorName)

	payload, err := sonic.Marshal(row)
	if err == nil {
		err = s.Broker.Publish(ctx, Channel(groupID), payload)
	}
	if err != nil {
		logger.Log.WithError(err).WithField("group_id", groupID).Warn("group message not published")
	}
	return &row, nil
}
