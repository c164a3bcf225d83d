package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/features/community/mentorship/dto"
	"capacitajun_backend/internals/features/community/mentorship/model"
	"capacitajun_backend/internals/helpers/testdb"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		status string
		action Action
		want   string
		err    error
	}{
		{model.StatusPending, ActionAccept, model.StatusAccepted, nil},
		{model.StatusPending, ActionDecline, model.StatusDeclined, nil},
		{model.StatusPending, ActionCancel, model.StatusCancelled, nil},
		{model.StatusAccepted, ActionCancel, "", ErrNotPending},
		{model.StatusDeclined, ActionAccept, "", ErrNotPending},
		{model.StatusCancelled, ActionDecline, "", ErrNotPending},
	}
	for _, tc := range cases {
		got, err := Transition(tc.status, tc.action)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "%s/%s", tc.status, tc.action)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestCreate_Self(t *testing.T) {
	db, _ := testdb.New(t)
	me := uuid.New()
	_, err := Create(context.Background(), db, me, "Ana", dto.CreateRequest{MentorID: me, Topic: "Carreira"})
	assert.ErrorIs(t, err, ErrSelfMentorship)
}

func TestCreate_DuplicatePending(t *testing.T) {
	db, mock := testdb.New(t)
	mentee, mentor := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "profiles" WHERE profile_id = \$1 AND profile_is_mentor`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "mentorship_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := Create(context.Background(), db, mentee, "Ana", dto.CreateRequest{MentorID: mentor, Topic: "Liderança"})
	assert.ErrorIs(t, err, ErrDuplicatePending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRespond_MenteeCannotAccept(t *testing.T) {
	db, mock := testdb.New(t)
	id, mentee, mentor := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "mentorship_requests" WHERE mentorship_request_id = \$1 LIMIT \$2 FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"mentorship_request_id", "mentorship_request_mentee_id", "mentorship_request_mentor_id", "mentorship_request_status"}).
			AddRow(id.String(), mentee.String(), mentor.String(), model.StatusPending))
	mock.ExpectRollback()

	_, err := Respond(context.Background(), db, mentee, id, ActionAccept, time.Now())
	assert.ErrorIs(t, err, ErrNotParty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRespond_AcceptNotifiesMentee(t *testing.T) {
	db, mock := testdb.New(t)
	id, mentee, mentor := uuid.New(), uuid.New(), uuid.New()
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "mentorship_requests" WHERE mentorship_request_id = \$1 LIMIT \$2 FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"mentorship_request_id", "mentorship_request_mentee_id", "mentorship_request_mentor_id", "mentorship_request_topic", "mentorship_request_status"}).
			AddRow(id.String(), mentee.String(), mentor.String(), "Excel avançado", model.StatusPending))
	mock.ExpectExec(`UPDATE "mentorship_requests" SET "mentorship_request_responded_at"=\$1,"mentorship_request_status"=\$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	r, err := Respond(context.Background(), db, mentor, id, ActionAccept, now)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, r.MentorshipRequestStatus)
	assert.Equal(t, now, *r.MentorshipRequestRespondedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
