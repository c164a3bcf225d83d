package badges

import (
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/progress/badges/model"
	"capacitajun_backend/internals/helpers/logger"
)

//go:embed data_badges.json
var data []byte

func Parse(raw []byte) ([]model.BadgeModel, error) {
	var rows []model.BadgeModel
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	for _, b := range rows {
		switch b.BadgeCriteria {
		case constants.BadgeCriteriaLessonsCompleted, constants.BadgeCriteriaStreakDays, constants.BadgeCriteriaTotalXP:
		default:
			return nil, fmt.Errorf("badge %s: unknown criteria %q", b.BadgeCode, b.BadgeCriteria)
		}
	}
	return rows, nil
}

// SeedBadges inserts the badge catalog keyed by badge_code.
func SeedBadges(db *gorm.DB) error {
	rows, err := Parse(data)
	if err != nil {
		return err
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "badge_code"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return res.Error
	}
	logger.Log.WithField("inserted", res.RowsAffected).Info("badges seeded")
	return nil
}
