package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/features/learning/quizzes/session"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/cache"
	"capacitajun_backend/internals/helpers/testdb"
)

func setup(t *testing.T) (*fiber.App, sqlmock.Sqlmock, *session.Store, uuid.UUID) {
	t.Helper()
	db, mock := testdb.New(t)
	store := session.NewStore(cache.NewMemory())
	userID := uuid.New()

	ctrl := NewAttemptController(db, store)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, userID.String())
		return c.Next()
	})
	g := app.Group("/lessons/:id/attempt")
	g.Get("/", ctrl.Get)
	g.Put("/answer", ctrl.Answer)
	g.Post("/next", ctrl.Next)
	g.Post("/submit", ctrl.Submit)
	g.Delete("/", ctrl.Reset)
	return app, mock, store, userID
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = sonic.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestAttempt_FreshIsContent(t *testing.T) {
	app, _, _, _ := setup(t)
	status, out := do(t, app, http.MethodGet, "/lessons/"+uuid.NewString()+"/attempt", "")
	require.Equal(t, fiber.StatusOK, status)

	st := out["data"].(map[string]any)["state"].(map[string]any)
	assert.Equal(t, "content", st["phase"])
}

func TestAttempt_AnswerOutsideQuizConflicts(t *testing.T) {
	app, _, _, _ := setup(t)
	status, _ := do(t, app, http.MethodPut, "/lessons/"+uuid.NewString()+"/attempt/answer", `{"answer":1}`)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestAttempt_AnswerThenNext(t *testing.T) {
	app, mock, store, userID := setup(t)
	lessonID, q1, q2 := uuid.New(), uuid.New(), uuid.New()

	st, err := session.Apply(session.New(lessonID), session.Start([]uuid.UUID{q1, q2}))
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), userID, st))

	base := "/lessons/" + lessonID.String() + "/attempt"

	status, _ := do(t, app, http.MethodPost, base+"/next", "")
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = do(t, app, http.MethodPut, base+"/answer", `{"answer":9}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	mock.ExpectQuery(`SELECT \* FROM "questions" WHERE question_id = \$1`).
		WithArgs(q1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "question_text", "question_options"}).
			AddRow(q1.String(), "O que é phishing?", "{Golpe,Peixe,Vírus,Firewall}"))
	status, out := do(t, app, http.MethodPut, base+"/answer", `{"answer":0}`)
	require.Equal(t, fiber.StatusOK, status)
	data := out["data"].(map[string]any)
	assert.NotNil(t, data["current_question"])
	_, leaked := data["current_question"].(map[string]any)["correct_index"]
	assert.False(t, leaked)

	mock.ExpectQuery(`SELECT \* FROM "questions" WHERE question_id = \$1`).
		WithArgs(q2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "question_text", "question_options"}).
			AddRow(q2.String(), "Senha forte tem?", "{12+,4,nome,data}"))
	status, out = do(t, app, http.MethodPost, base+"/next", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), out["data"].(map[string]any)["state"].(map[string]any)["index"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttempt_SubmitBeforeLastConflicts(t *testing.T) {
	app, _, store, userID := setup(t)
	lessonID := uuid.New()

	st, _ := session.Apply(session.New(lessonID), session.Start([]uuid.UUID{uuid.New(), uuid.New()}))
	st, _ = session.Apply(st, session.Select(1))
	require.NoError(t, store.Save(context.Background(), userID, st))

	status, _ := do(t, app, http.MethodPost, "/lessons/"+lessonID.String()+"/attempt/submit", "")
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestAttempt_Reset(t *testing.T) {
	app, _, store, userID := setup(t)
	lessonID := uuid.New()

	st, _ := session.Apply(session.New(lessonID), session.Start([]uuid.UUID{uuid.New()}))
	require.NoError(t, store.Save(context.Background(), userID, st))

	status, _ := do(t, app, http.MethodDelete, "/lessons/"+lessonID.String()+"/attempt", "")
	require.Equal(t, fiber.StatusOK, status)

	got, err := store.Load(context.Background(), userID, lessonID)
	require.NoError(t, err)
	assert.Equal(t, session.PhaseContent, got.Phase)
}
