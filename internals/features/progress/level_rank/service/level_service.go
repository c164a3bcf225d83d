package service

import (
	"errors"

	"gorm.io/gorm"

	"capacitajun_backend/internals/features/progress/level_rank/model"
)

// DefaultLevel is used when the level table is empty or no row matches.
const DefaultLevel = 1

// LevelForPoints returns the highest level whose [min, max] range contains points.
func LevelForPoints(levels []model.LevelRequirement, points int) int {
	best := 0
	for _, l := range levels {
		if l.Covers(points) && l.LevelReqLevel > best {
			best = l.LevelReqLevel
		}
	}
	if best == 0 {
		return DefaultLevel
	}
	return best
}

// NextLevel returns the first level above current, or nil at the top of the table.
func NextLevel(levels []model.LevelRequirement, current int) *model.LevelRequirement {
	var next *model.LevelRequirement
	for i := range levels {
		l := &levels[i]
		if l.LevelReqLevel <= current {
			continue
		}
		if next == nil || l.LevelReqLevel < next.LevelReqLevel {
			next = l
		}
	}
	return next
}

func ListLevels(db *gorm.DB) ([]model.LevelRequirement, error) {
	var levels []model.LevelRequirement
	err := db.Order("level_req_level ASC").Find(&levels).Error
	return levels, err
}

// ResolveLevel looks up the level for points directly in level_requirements.
func ResolveLevel(db *gorm.DB, points int) (int, error) {
	var level model.LevelRequirement
	err := db.Where("level_req_min_points <= ? AND (level_req_max_points IS NULL OR level_req_max_points >= ?)", points, points).
		Order("level_req_level DESC").
		First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultLevel, nil
	}
	if err != nil {
		return 0, err
	}
	return level.LevelReqLevel, nil
}
