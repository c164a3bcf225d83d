package seeds

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/seeds/progress/badges"
	"capacitajun_backend/internals/seeds/progress/levels"
	"capacitajun_backend/internals/seeds/tools/cafe_presets"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return raw
}

func TestEmbeddedData(t *testing.T) {
	lv, err := levels.Parse(readFile(t, "progress/levels/data_levels_requirements.json"))
	require.NoError(t, err)
	require.NotEmpty(t, lv)
	assert.Equal(t, 0, lv[0].LevelReqMinPoints)
	assert.Nil(t, lv[len(lv)-1].LevelReqMaxPoints)
	for i := 1; i < len(lv); i++ {
		require.NotNil(t, lv[i-1].LevelReqMaxPoints)
		assert.Equal(t, *lv[i-1].LevelReqMaxPoints+1, lv[i].LevelReqMinPoints, "level %d", lv[i].LevelReqLevel)
	}

	_, err = badges.Parse(readFile(t, "progress/badges/data_badges.json"))
	require.NoError(t, err)

	presets, err := cafe_presets.Parse(readFile(t, "tools/cafe_presets/data_cafe_presets.json"))
	require.NoError(t, err)
	for _, p := range presets {
		assert.Nil(t, p.CafePresetOwnerID)
	}
}

func TestBadgesParse_RejectsUnknownCriteria(t *testing.T) {
	_, err := badges.Parse([]byte(`[{"badge_code":"x","badge_criteria":"logins","badge_threshold":1}]`))
	assert.Error(t, err)
}

func TestCafePresetsParse_RejectsDuplicates(t *testing.T) {
	_, err := cafe_presets.Parse([]byte(`[{"name":"Dup","master_volume":0.5,"mix":[
		{"sound":"rain","volume":0.5,"pan":0},{"sound":"rain","volume":0.2,"pan":0}]}]`))
	assert.Error(t, err)
}
