package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"capacitajun_backend/internals/helpers/logger"
	"capacitajun_backend/internals/seeds/progress/badges"
	"capacitajun_backend/internals/seeds/progress/levels"
	"capacitajun_backend/internals/seeds/tools/cafe_presets"
)

type seed struct {
	name string
	run  func(*gorm.DB) error
}

var all = []seed{
	{"level_requirements", levels.SeedLevelRequirements},
	{"badges", badges.SeedBadges},
	{"cafe_presets", cafe_presets.SeedCafePresets},
}

// RunAllSeeds loads the reference data. Every seed is idempotent.
func RunAllSeeds(db *gorm.DB) error {
	for _, s := range all {
		logger.Log.WithField("seed", s.name).Info("running seed")
		if err := s.run(db); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
	}
	return nil
}
