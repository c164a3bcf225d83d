package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist keeps revoked access tokens until they would expire anyway.
// Token holds the sha256 hex of the raw JWT, never the token itself.
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:char(64);not null;unique" json:"-"`
	ExpiredAt time.Time      `gorm:"not null;index" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
