package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/learning/quizzes/service"
	helper "capacitajun_backend/internals/helpers"
)

type mapKeys map[uuid.UUID]service.AnswerKey

func (m mapKeys) AnswerKey(_ context.Context, id uuid.UUID) (service.AnswerKey, error) {
	k, ok := m[id]
	if !ok {
		return service.AnswerKey{}, service.ErrQuestionNotFound
	}
	return k, nil
}

func statusIs(status string) LessonStatusFunc {
	return func(context.Context, uuid.UUID, uuid.UUID) (string, error) { return status, nil }
}

func newApp(keys service.AnswerKeyLookup, authenticated bool) *fiber.App {
	return newAppWithStatus(keys, authenticated, statusIs(constants.LessonStatusAvailable))
}

func newAppWithStatus(keys service.AnswerKeyLookup, authenticated bool, status LessonStatusFunc) *fiber.App {
	ctrl := &QuizController{Keys: keys, Status: status}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if authenticated {
			c.Locals(helper.LocUserID, uuid.NewString())
		}
		return c.Next()
	})
	app.Post("/quiz/validate", ctrl.Validate)
	return app
}

func post(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/quiz/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = sonic.Unmarshal(raw, &out)
	return resp, out
}

func TestValidate_Unauthenticated(t *testing.T) {
	resp, _ := post(t, newApp(mapKeys{}, false), `{}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestValidate_EmptyAnswers(t *testing.T) {
	body := `{"lessonId":"` + uuid.NewString() + `","answers":[]}`
	resp, _ := post(t, newApp(mapKeys{}, true), body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestValidate_Malformed(t *testing.T) {
	resp, _ := post(t, newApp(mapKeys{}, true), `{"lessonId":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestValidate_Grades(t *testing.T) {
	lessonID, q1, q2 := uuid.New(), uuid.New(), uuid.New()
	keys := mapKeys{
		q1: {LessonID: lessonID, CorrectIndex: 1},
		q2: {LessonID: lessonID, CorrectIndex: 3},
	}
	body := `{"lessonId":"` + lessonID.String() + `","answers":[` +
		`{"questionId":"` + q1.String() + `","userAnswer":1},` +
		`{"questionId":"` + q2.String() + `","userAnswer":3}]}`

	resp, out := post(t, newApp(keys, true), body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := out["data"].(map[string]any)
	assert.Equal(t, float64(2), data["correctCount"])
	assert.Equal(t, float64(100), data["score"])
	assert.Equal(t, true, data["passed"])
}

func TestValidate_UnknownQuestion(t *testing.T) {
	body := `{"lessonId":"` + uuid.NewString() + `","answers":[{"questionId":"` + uuid.NewString() + `","userAnswer":0}]}`
	resp, _ := post(t, newApp(mapKeys{}, true), body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestValidate_LockedLesson(t *testing.T) {
	lessonID, q1 := uuid.New(), uuid.New()
	keys := mapKeys{q1: {LessonID: lessonID, CorrectIndex: 2}}
	body := `{"lessonId":"` + lessonID.String() + `","answers":[{"questionId":"` + q1.String() + `","userAnswer":0}]}`

	resp, out := post(t, newAppWithStatus(keys, true, statusIs(constants.LessonStatusLocked)), body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Nil(t, out["data"])
}

func TestValidate_ForeignQuestionKeyHidden(t *testing.T) {
	lessonID, otherLesson, q1 := uuid.New(), uuid.New(), uuid.New()
	keys := mapKeys{q1: {LessonID: otherLesson, CorrectIndex: 3}}
	body := `{"lessonId":"` + lessonID.String() + `","answers":[{"questionId":"` + q1.String() + `","userAnswer":0}]}`

	resp, out := post(t, newApp(keys, true), body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	results := out["data"].(map[string]any)["results"].([]any)
	require.Len(t, results, 1)
	r := results[0].(map[string]any)
	assert.Equal(t, false, r["correct"])
	assert.Nil(t, r["correctAnswer"])
}
