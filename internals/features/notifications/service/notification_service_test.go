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

func TestNotify_StoresPayload(t *testing.T) {
	db, mock := testdb.New(t)
	userID := uuid.New()

	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(uuid.NewString()))

	err := Notify(db, userID, "level_up", "Subiu de nível!", "Agora você é nível 3", map[string]any{"level": 3})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_OtherUsersNotification(t *testing.T) {
	db, mock := testdb.New(t)

	mock.ExpectExec(`UPDATE "notifications" SET "notification_read_at"=COALESCE\(notification_read_at, \$1\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := MarkRead(context.Background(), db, uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllRead(t *testing.T) {
	db, mock := testdb.New(t)
	userID := uuid.New()

	mock.ExpectExec(`UPDATE "notifications" SET "notification_read_at"=\$1 WHERE notification_user_id = \$2 AND notification_read_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := MarkAllRead(context.Background(), db, userID, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
