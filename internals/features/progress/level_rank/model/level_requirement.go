package model

import (
	"time"
)

// LevelRequirement is one row of the XP → level table.
type LevelRequirement struct {
	LevelReqID        uint      `gorm:"column:level_req_id;primaryKey" json:"level_req_id"`
	LevelReqLevel     int       `gorm:"column:level_req_level;unique;not null" json:"level_req_level"`
	LevelReqName      string    `gorm:"column:level_req_name;type:varchar(100)" json:"level_req_name"`
	LevelReqMinPoints int       `gorm:"column:level_req_min_points;not null" json:"level_req_min_points"`
	LevelReqMaxPoints *int      `gorm:"column:level_req_max_points" json:"level_req_max_points,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LevelRequirement) TableName() string {
	return "level_requirements"
}

// Covers reports whether points falls in [min, max]; a nil max is open-ended.
func (l LevelRequirement) Covers(points int) bool {
	if points < l.LevelReqMinPoints {
		return false
	}
	return l.LevelReqMaxPoints == nil || points <= *l.LevelReqMaxPoints
}
