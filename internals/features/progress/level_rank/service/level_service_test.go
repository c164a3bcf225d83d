package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/features/progress/level_rank/model"
	"capacitajun_backend/internals/helpers/testdb"
)

func intPtr(v int) *int { return &v }

var table = []model.LevelRequirement{
	{LevelReqLevel: 1, LevelReqName: "Estagiário", LevelReqMinPoints: 0, LevelReqMaxPoints: intPtr(99)},
	{LevelReqLevel: 2, LevelReqName: "Júnior", LevelReqMinPoints: 100, LevelReqMaxPoints: intPtr(299)},
	{LevelReqLevel: 3, LevelReqName: "Pleno", LevelReqMinPoints: 300, LevelReqMaxPoints: intPtr(699)},
	{LevelReqLevel: 4, LevelReqName: "Sênior", LevelReqMinPoints: 700},
}

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{5000, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelForPoints(table, tc.points), "points=%d", tc.points)
	}
}

func TestLevelForPoints_EmptyTable(t *testing.T) {
	assert.Equal(t, DefaultLevel, LevelForPoints(nil, 1000))
}

func TestNextLevel(t *testing.T) {
	next := NextLevel(table, 2)
	require.NotNil(t, next)
	assert.Equal(t, 300, next.LevelReqMinPoints)

	assert.Nil(t, NextLevel(table, 4))
}

func TestResolveLevel(t *testing.T) {
	t.Run("matching row", func(t *testing.T) {
		db, mock := testdb.New(t)
		mock.ExpectQuery(`SELECT \* FROM "level_requirements" WHERE level_req_min_points <= \$1`).
			WithArgs(150, 150, 1).
			WillReturnRows(sqlmock.NewRows([]string{"level_req_id", "level_req_level", "level_req_min_points"}).
				AddRow(2, 2, 100))

		level, err := ResolveLevel(db, 150)
		require.NoError(t, err)
		assert.Equal(t, 2, level)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table falls back", func(t *testing.T) {
		db, mock := testdb.New(t)
		mock.ExpectQuery(`SELECT \* FROM "level_requirements"`).
			WillReturnRows(sqlmock.NewRows([]string{"level_req_id"}))

		level, err := ResolveLevel(db, 10)
		require.NoError(t, err)
		assert.Equal(t, DefaultLevel, level)
	})
}
