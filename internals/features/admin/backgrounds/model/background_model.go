package model

import (
	"time"

	"github.com/google/uuid"
)

type BackgroundImageModel struct {
	BackgroundImageID          uuid.UUID `gorm:"column:background_image_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"background_image_id"`
	BackgroundImageURL         string    `gorm:"column:background_image_url;type:text;not null" json:"background_image_url"`
	BackgroundImageStoragePath string    `gorm:"column:background_image_storage_path;type:text;not null" json:"background_image_storage_path"`
	BackgroundImageIsActive    bool      `gorm:"column:background_image_is_active;not null;default:true" json:"background_image_is_active"`
	BackgroundImageOrder       int       `gorm:"column:background_image_order;not null;default:0" json:"background_image_order"`
	CreatedAt                  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BackgroundImageModel) TableName() string {
	return "auth_background_images"
}
