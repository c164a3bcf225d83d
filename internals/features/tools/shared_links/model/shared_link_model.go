package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SharedLinkModel struct {
	SharedLinkID          uuid.UUID      `gorm:"column:shared_link_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"shared_link_id"`
	SharedLinkTitle       string         `gorm:"column:shared_link_title;type:varchar(150);not null" json:"shared_link_title"`
	SharedLinkURL         string         `gorm:"column:shared_link_url;type:text;not null" json:"shared_link_url"`
	SharedLinkDescription *string        `gorm:"column:shared_link_description;type:text" json:"shared_link_description,omitempty"`
	SharedLinkCategory    string         `gorm:"column:shared_link_category;type:varchar(60);not null;default:'geral';index" json:"shared_link_category"`
	SharedLinkCreatedBy   uuid.UUID      `gorm:"column:shared_link_created_by;type:uuid;not null" json:"shared_link_created_by"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (SharedLinkModel) TableName() string {
	return "shared_links"
}
