package cafe_presets

import (
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/cafe/dto"
	"capacitajun_backend/internals/features/tools/cafe/model"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

//go:embed data_cafe_presets.json
var data []byte

// Parse validates every built-in preset the same way user presets are.
func Parse(raw []byte) ([]model.CafePresetModel, error) {
	var reqs []dto.PresetRequest
	if err := sonic.Unmarshal(raw, &reqs); err != nil {
		return nil, err
	}
	out := make([]model.CafePresetModel, 0, len(reqs))
	for _, r := range reqs {
		if err := helper.Validate.Struct(&r); err != nil {
			return nil, fmt.Errorf("preset %q: %w", r.Name, err)
		}
		mix, ok := r.MixJSON()
		if !ok {
			return nil, fmt.Errorf("preset %q: duplicate sound", r.Name)
		}
		out = append(out, model.CafePresetModel{
			CafePresetName:         r.Name,
			CafePresetMix:          mix,
			CafePresetMasterVolume: r.MasterVolume,
		})
	}
	return out, nil
}

// SeedCafePresets inserts built-ins missing by name.
func SeedCafePresets(db *gorm.DB) error {
	rows, err := Parse(data)
	if err != nil {
		return err
	}
	inserted := 0
	for i := range rows {
		var n int64
		if err := db.Model(&model.CafePresetModel{}).
			Where("cafe_preset_owner_id IS NULL AND cafe_preset_name = ?", rows[i].CafePresetName).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := db.Create(&rows[i]).Error; err != nil {
			return err
		}
		inserted++
	}
	logger.Log.WithField("inserted", inserted).Info("cafe presets seeded")
	return nil
}
