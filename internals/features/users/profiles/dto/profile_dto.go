package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"capacitajun_backend/internals/features/users/profiles/model"
)

type ProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email,omitempty"`
	FullName   string    `json:"full_name"`
	Department *string   `json:"department,omitempty"`
	JobTitle   *string   `json:"job_title,omitempty"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Role       string    `json:"role"`
	IsMentor   bool      `json:"is_mentor"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfileRow is the profiles ⨝ users projection used by list and detail reads.
type ProfileRow struct {
	model.ProfileModel
	Email string `gorm:"column:email"`
}

func ToProfileResponse(r ProfileRow) ProfileResponse {
	p := r.ProfileModel
	return ProfileResponse{
		ID:         p.ProfileID,
		Email:      r.Email,
		FullName:   p.ProfileFullName,
		Department: p.ProfileDepartment,
		JobTitle:   p.ProfileJobTitle,
		AvatarURL:  p.ProfileAvatarURL,
		Bio:        p.ProfileBio,
		Role:       p.ProfileRole,
		IsMentor:   p.ProfileIsMentor,
		IsActive:   p.ProfileIsActive,
		CreatedAt:  p.CreatedAt,
	}
}

func ToProfileResponses(rows []ProfileRow) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToProfileResponse(r))
	}
	return out
}

type UpdateProfileRequest struct {
	FullName   *string `json:"full_name" validate:"omitempty,min=2,max=120"`
	Department *string `json:"department" validate:"omitempty,max=120"`
	JobTitle   *string `json:"job_title" validate:"omitempty,max=120"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url"`
	Bio        *string `json:"bio" validate:"omitempty,max=1000"`
	IsMentor   *bool   `json:"is_mentor"`
}

// Updates returns only the columns present in the request.
func (r UpdateProfileRequest) Updates() map[string]any {
	m := map[string]any{}
	if r.FullName != nil {
		m["profile_full_name"] = strings.TrimSpace(*r.FullName)
	}
	if r.Department != nil {
		m["profile_department"] = strings.TrimSpace(*r.Department)
	}
	if r.JobTitle != nil {
		m["profile_job_title"] = strings.TrimSpace(*r.JobTitle)
	}
	if r.AvatarURL != nil {
		m["profile_avatar_url"] = strings.TrimSpace(*r.AvatarURL)
	}
	if r.Bio != nil {
		m["profile_bio"] = *r.Bio
	}
	if r.IsMentor != nil {
		m["profile_is_mentor"] = *r.IsMentor
	}
	return m
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=learner admin"`
}

type UpdateActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
