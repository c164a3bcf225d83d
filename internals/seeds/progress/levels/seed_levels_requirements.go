package levels

import (
	_ "embed"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/features/progress/level_rank/model"
	"capacitajun_backend/internals/helpers/logger"
)

//go:embed data_levels_requirements.json
var data []byte

type LevelSeed struct {
	LevelReqLevel     int    `json:"level_req_level"`
	LevelReqName      string `json:"level_req_name"`
	LevelReqMinPoints int    `json:"level_req_min_points"`
	LevelReqMaxPoints *int   `json:"level_req_max_points"`
}

func Parse(raw []byte) ([]model.LevelRequirement, error) {
	var items []LevelSeed
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]model.LevelRequirement, 0, len(items))
	for _, it := range items {
		out = append(out, model.LevelRequirement{
			LevelReqLevel:     it.LevelReqLevel,
			LevelReqName:      it.LevelReqName,
			LevelReqMinPoints: it.LevelReqMinPoints,
			LevelReqMaxPoints: it.LevelReqMaxPoints,
		})
	}
	return out, nil
}

// SeedLevelRequirements inserts the level table; existing levels are kept.
func SeedLevelRequirements(db *gorm.DB) error {
	rows, err := Parse(data)
	if err != nil {
		return err
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "level_req_level"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return res.Error
	}
	logger.Log.WithField("inserted", res.RowsAffected).Info("level requirements seeded")
	return nil
}
