package dto

import (
	"time"

	profileDTO "capacitajun_backend/internals/features/users/profiles/dto"
)

type RegisterRequest struct {
	Email      string  `json:"email" validate:"required,email,max=255"`
	Password   string  `json:"password" validate:"required,min=8,max=72"`
	FullName   string  `json:"full_name" validate:"required,min=2,max=120"`
	Department *string `json:"department" validate:"omitempty,max=120"`
	JobTitle   *string `json:"job_title" validate:"omitempty,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type LoginResponse struct {
	AccessToken string                     `json:"access_token"`
	TokenType   string                     `json:"token_type"`
	ExpiresAt   time.Time                  `json:"expires_at"`
	User        profileDTO.ProfileResponse `json:"user"`
}
