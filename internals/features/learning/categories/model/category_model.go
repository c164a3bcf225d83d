package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	CategoryID          uuid.UUID      `gorm:"column:category_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"category_id"`
	CategoryName        string         `gorm:"column:category_name;type:varchar(120);not null" json:"category_name"`
	CategorySlug        string         `gorm:"column:category_slug;type:varchar(140);not null;uniqueIndex" json:"category_slug"`
	CategoryDescription string         `gorm:"column:category_description;type:text" json:"category_description"`
	CategoryIcon        string         `gorm:"column:category_icon;type:varchar(80)" json:"category_icon"`
	CategoryOrderIndex  int            `gorm:"column:category_order_index;not null;default:0" json:"category_order_index"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
