package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/helpers/testdb"
)

var progressCols = []string{
	"user_progress_id", "user_progress_user_id", "user_progress_total_xp", "user_progress_level",
	"user_progress_current_streak", "user_progress_longest_streak", "user_progress_lessons_completed",
	"user_progress_last_activity_date",
}

func expectEnsure(mock sqlmock.Sqlmock, userID uuid.UUID, xp, level, streak, longest, lessons int, last any) {
	mock.ExpectQuery(`INSERT INTO "user_progress" .* ON CONFLICT \("user_progress_user_id"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"user_progress_id"}))
	mock.ExpectQuery(`SELECT \* FROM "user_progress" WHERE user_progress_user_id = \$1 LIMIT \$2 FOR UPDATE`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows(progressCols).AddRow(1, userID.String(), xp, level, streak, longest, lessons, last))
}

func expectAward(mock sqlmock.Sqlmock, userID uuid.UUID, totalAfter, level int) {
	mock.ExpectQuery(`INSERT INTO "user_point_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_point_log_id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "user_progress" SET "last_updated"=\$1,"user_progress_total_xp"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "user_progress" WHERE user_progress_user_id = \$1 ORDER BY`).
		WillReturnRows(sqlmock.NewRows(progressCols[:4]).AddRow(1, userID.String(), totalAfter, level))
	mock.ExpectQuery(`SELECT \* FROM "level_requirements"`).
		WillReturnRows(sqlmock.NewRows([]string{"level_req_id", "level_req_level", "level_req_min_points"}).AddRow(level, level, 0))
}

func TestOnLessonCompleted_FirstPerfectPass(t *testing.T) {
	db, mock := testdb.New(t)
	userID := uuid.New()
	today := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	expectEnsure(mock, userID, 0, 1, 0, 0, 0, nil)
	mock.ExpectExec(`UPDATE "user_progress" SET .*"user_progress_current_streak"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "user_daily_activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_daily_activity_id"}).AddRow(1))
	expectAward(mock, userID, 50, 1)
	expectAward(mock, userID, 75, 1)
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`SELECT \* FROM "badges" WHERE NOT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"badge_id"}))

	delta, err := OnLessonCompleted(context.Background(), db, LessonEvent{
		UserID: userID, LessonID: uuid.New(), LessonTitle: "Onboarding", Score: 100, FirstPass: true, Today: today,
	})
	require.NoError(t, err)

	assert.Equal(t, 75, delta.XPAwarded)
	assert.Equal(t, 75, delta.TotalXP)
	assert.Equal(t, 1, delta.CurrentStreak)
	assert.Equal(t, 1, delta.LongestStreak)
	assert.False(t, delta.LeveledUp)
	assert.Empty(t, delta.NewBadges)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnLessonCompleted_RetryAfterPassSameDay(t *testing.T) {
	db, mock := testdb.New(t)
	userID := uuid.New()
	today := time.Date(2026, 5, 4, 18, 0, 0, 0, time.UTC)
	morning := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	expectEnsure(mock, userID, 300, 3, 6, 9, 12, morning)
	mock.ExpectExec(`UPDATE "user_progress" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "user_daily_activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_daily_activity_id"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "badges" WHERE NOT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"badge_id"}))

	delta, err := OnLessonCompleted(context.Background(), db, LessonEvent{
		UserID: userID, LessonID: uuid.New(), Score: 90, FirstPass: false, Today: today,
	})
	require.NoError(t, err)

	assert.Zero(t, delta.XPAwarded)
	assert.Equal(t, 300, delta.TotalXP)
	assert.Equal(t, 6, delta.CurrentStreak)
	assert.Equal(t, 9, delta.LongestStreak)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnLessonCompleted_SeventhDayStreakBonus(t *testing.T) {
	db, mock := testdb.New(t)
	userID := uuid.New()
	today := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)

	expectEnsure(mock, userID, 200, 2, 6, 6, 4, yesterday)
	mock.ExpectExec(`UPDATE "user_progress" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "user_daily_activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_daily_activity_id"}).AddRow(1))
	expectAward(mock, userID, 250, 2)
	expectAward(mock, userID, 280, 2)
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`SELECT \* FROM "badges" WHERE NOT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"badge_id"}))

	delta, err := OnLessonCompleted(context.Background(), db, LessonEvent{
		UserID: userID, LessonID: uuid.New(), Score: 85, FirstPass: true, Today: today,
	})
	require.NoError(t, err)

	assert.Equal(t, 80, delta.XPAwarded)
	assert.Equal(t, 7, delta.CurrentStreak)
	assert.Equal(t, 7, delta.LongestStreak)
	assert.NoError(t, mock.ExpectationsWereMet())
}
