package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/community/mentorship/dto"
	"capacitajun_backend/internals/features/community/mentorship/model"
	notificationService "capacitajun_backend/internals/features/notifications/service"
	"capacitajun_backend/internals/helpers/logger"
)

type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
	ActionCancel  Action = "cancel"
)

var (
	ErrNotFound         = errors.New("mentorship request not found")
	ErrMentorNotFound   = errors.New("mentor not found")
	ErrSelfMentorship   = errors.New("cannot request mentorship from yourself")
	ErrDuplicatePending = errors.New("a pending request already exists")
	ErrNotPending       = errors.New("request is no longer pending")
	ErrNotParty         = errors.New("actor cannot perform this action")
)

// Transition resolves the next status. Only pending requests move.
func Transition(status string, a Action) (string, error) {
	if status != model.StatusPending {
		return "", ErrNotPending
	}
	switch a {
	case ActionAccept:
		return model.StatusAccepted, nil
	case ActionDecline:
		return model.StatusDeclined, nil
	case ActionCancel:
		return model.StatusCancelled, nil
	}
	return "", ErrNotParty
}

// allowed reports whether actor may apply a: mentors answer, mentees cancel.
func allowed(r model.MentorshipRequestModel, actor uuid.UUID, a Action) bool {
	if a == ActionCancel {
		return r.MentorshipRequestMenteeID == actor
	}
	return r.MentorshipRequestMentorID == actor
}

func ListMentors(ctx context.Context, db *gorm.DB, exclude uuid.UUID, search string, limit, offset int) ([]dto.MentorRow, int64, error) {
	base := func() *gorm.DB {
		q := db.WithContext(ctx).Table("profiles").
			Where("profile_is_mentor = ? AND profile_is_active = ? AND profile_id <> ?", true, true, exclude)
		if s := strings.TrimSpace(search); s != "" {
			like := "%" + s + "%"
			q = q.Where("(profile_full_name ILIKE ? OR profile_department ILIKE ? OR profile_job_title ILIKE ?)", like, like, like)
		}
		return q
	}
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []dto.MentorRow{}
	err := base().
		Select("profile_id, profile_full_name, profile_department, profile_job_title, profile_avatar_url, profile_bio").
		Order("profile_full_name ASC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}

// Create opens a pending request and notifies the mentor.
func Create(ctx context.Context, db *gorm.DB, mentee uuid.UUID, menteeName string, req dto.CreateRequest) (*model.MentorshipRequestModel, error) {
	if req.MentorID == mentee {
		return nil, ErrSelfMentorship
	}
	r := model.MentorshipRequestModel{
		MentorshipRequestMenteeID: mentee,
		MentorshipRequestMentorID: req.MentorID,
		MentorshipRequestTopic:    strings.TrimSpace(req.Topic),
		MentorshipRequestMessage:  req.Message,
		MentorshipRequestStatus:   model.StatusPending,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mentors int64
		if err := tx.Table("profiles").
			Where("profile_id = ? AND profile_is_mentor = ? AND profile_is_active = ?", req.MentorID, true, true).
			Count(&mentors).Error; err != nil {
			return err
		}
		if mentors == 0 {
			return ErrMentorNotFound
		}

		var pending int64
		if err := tx.Model(&model.MentorshipRequestModel{}).
			Where("mentorship_request_mentee_id = ? AND mentorship_request_mentor_id = ? AND mentorship_request_status = ?",
				mentee, req.MentorID, model.StatusPending).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return ErrDuplicatePending
		}

		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		return notificationService.Notify(tx, req.MentorID, constants.NotificationMentorship,
			"Novo pedido de mentoria",
			menteeName+" pediu mentoria sobre \""+r.MentorshipRequestTopic+"\"",
			map[string]any{"request_id": r.MentorshipRequestID, "status": r.MentorshipRequestStatus})
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

var notices = map[string]struct{ title, body string }{
	model.StatusAccepted:  {"Mentoria aceita", "Seu pedido de mentoria sobre \"%s\" foi aceito"},
	model.StatusDeclined:  {"Mentoria recusada", "Seu pedido de mentoria sobre \"%s\" foi recusado"},
	model.StatusCancelled: {"Mentoria cancelada", "O pedido de mentoria sobre \"%s\" foi cancelado"},
}

// Respond applies a under a row lock and notifies the other party.
func Respond(ctx context.Context, db *gorm.DB, actor, id uuid.UUID, a Action, now time.Time) (*model.MentorshipRequestModel, error) {
	var r model.MentorshipRequestModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("mentorship_request_id = ?", id).
			Take(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !allowed(r, actor, a) {
			return ErrNotParty
		}
		next, err := Transition(r.MentorshipRequestStatus, a)
		if err != nil {
			return err
		}
		if err := tx.Model(&model.MentorshipRequestModel{}).
			Where("mentorship_request_id = ?", id).
			Updates(map[string]any{
				"mentorship_request_status":       next,
				"mentorship_request_responded_at": now,
			}).Error; err != nil {
			return err
		}
		r.MentorshipRequestStatus = next
		r.MentorshipRequestRespondedAt = &now

		other := r.MentorshipRequestMenteeID
		if a == ActionCancel {
			other = r.MentorshipRequestMentorID
		}
		n := notices[next]
		return notificationService.Notify(tx, other, constants.NotificationMentorship,
			n.title, fmt.Sprintf(n.body, r.MentorshipRequestTopic),
			map[string]any{"request_id": r.MentorshipRequestID, "status": next})
	})
	if err != nil {
		return nil, err
	}
	logger.WithUserID(actor.String()).
		WithField("request_id", id).
		WithField("status", r.MentorshipRequestStatus).
		Info("mentorship request updated")
	return &r, nil
}

// List returns requests where the user is mentee or mentor. as narrows it to
// "mentee" or "mentor".
func List(ctx context.Context, db *gorm.DB, userID uuid.UUID, as, status string, limit, offset int) ([]dto.RequestRow, int64, error) {
	base := func() *gorm.DB {
		q := db.WithContext(ctx).Table("mentorship_requests AS m")
		switch as {
		case "mentee":
			q = q.Where("m.mentorship_request_mentee_id = ?", userID)
		case "mentor":
			q = q.Where("m.mentorship_request_mentor_id = ?", userID)
		default:
			q = q.Where("(m.mentorship_request_mentee_id = ? OR m.mentorship_request_mentor_id = ?)", userID, userID)
		}
		if status != "" {
			q = q.Where("m.mentorship_request_status = ?", status)
		}
		return q
	}
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []dto.RequestRow{}
	err := base().
		Select(`m.mentorship_request_id, m.mentorship_request_mentee_id, m.mentorship_request_mentor_id,
COALESCE(me.profile_full_name, '') AS mentee_name, COALESCE(mo.profile_full_name, '') AS mentor_name,
m.mentorship_request_topic, m.mentorship_request_message, m.mentorship_request_status,
m.mentorship_request_responded_at, m.created_at`).
		Joins("LEFT JOIN profiles me ON me.profile_id = m.mentorship_request_mentee_id").
		Joins("LEFT JOIN profiles mo ON mo.profile_id = m.mentorship_request_mentor_id").
		Order("m.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}
