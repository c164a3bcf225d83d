package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/helpers/testdb"
)

func progressRow(userID uuid.UUID, xp, level int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_progress_id", "user_progress_user_id", "user_progress_total_xp", "user_progress_level"}).
		AddRow(1, userID.String(), xp, level)
}

func TestAwardXP_LevelUpNotifies(t *testing.T) {
	db, mock := testdb.New(t)
	userID := uuid.New()
	lessonID := uuid.New()

	mock.ExpectQuery(`INSERT INTO "user_point_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_point_log_id"}).AddRow(10))
	mock.ExpectExec(`UPDATE "user_progress" SET "last_updated"=\$1,"user_progress_total_xp"=user_progress_total_xp \+ \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "user_progress" WHERE user_progress_user_id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(progressRow(userID, 120, 1))
	mock.ExpectQuery(`SELECT \* FROM "level_requirements"`).
		WithArgs(120, 120, 1).
		WillReturnRows(sqlmock.NewRows([]string{"level_req_id", "level_req_level", "level_req_min_points"}).AddRow(2, 2, 100))
	mock.ExpectExec(`UPDATE "user_progress" SET "user_progress_level"=\$1`).
		WithArgs(2, sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(uuid.NewString()))

	res, err := AwardXP(db, userID, Award{Points: constants.LessonCompletionXP, Source: constants.PointSourceLessonCompletion, SourceID: &lessonID})
	require.NoError(t, err)
	assert.Equal(t, 120, res.TotalXP)
	assert.Equal(t, 2, res.Level)
	assert.True(t, res.LeveledUp())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAwardXP_SameLevel(t *testing.T) {
	db, mock := testdb.New(t)
	userID := uuid.New()

	mock.ExpectQuery(`INSERT INTO "user_point_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_point_log_id"}).AddRow(11))
	mock.ExpectExec(`UPDATE "user_progress"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "user_progress"`).WillReturnRows(progressRow(userID, 75, 1))
	mock.ExpectQuery(`SELECT \* FROM "level_requirements"`).
		WillReturnRows(sqlmock.NewRows([]string{"level_req_id", "level_req_level", "level_req_min_points"}).AddRow(1, 1, 0))

	res, err := AwardXP(db, userID, Award{Points: 25, Source: constants.PointSourcePerfectScore})
	require.NoError(t, err)
	assert.False(t, res.LeveledUp())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAwardXP_RejectsNonPositive(t *testing.T) {
	db, mock := testdb.New(t)
	_, err := AwardXP(db, uuid.New(), Award{Points: 0, Source: constants.PointSourceBadge})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
