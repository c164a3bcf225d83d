package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/testdb"
)

func newApp(ctrl *LessonController, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, userID.String())
		return c.Next()
	})
	app.Get("/categories/:id/lessons", ctrl.ListByCategory)
	app.Get("/lessons/search", ctrl.Search)
	app.Get("/lessons/:id", ctrl.Detail)
	return app
}

var lessonCols = []string{"lesson_id", "lesson_category_id", "lesson_title", "lesson_video_url", "lesson_order_index"}

func TestListByCategory_Statuses(t *testing.T) {
	db, mock := testdb.New(t)
	userID, categoryID := uuid.New(), uuid.New()
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE lesson_category_id = \$1 AND "lessons"."deleted_at" IS NULL ORDER BY lesson_order_index ASC`).
		WithArgs(categoryID).
		WillReturnRows(sqlmock.NewRows(lessonCols).
			AddRow(first.String(), categoryID.String(), "Boas-vindas", "https://youtu.be/dQw4w9WgXcQ", 0).
			AddRow(second.String(), categoryID.String(), "Código de conduta", nil, 1).
			AddRow(third.String(), categoryID.String(), "LGPD", nil, 2))
	mock.ExpectQuery(`SELECT "lesson_completion_lesson_id" FROM "lesson_completions"`).
		WillReturnRows(sqlmock.NewRows([]string{"lesson_completion_lesson_id"}).AddRow(first.String()))
	mock.ExpectQuery(`SELECT question_lesson_id AS lesson_id, COUNT\(\*\) AS total FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"lesson_id", "total"}).AddRow(second.String(), 5))

	req := httptest.NewRequest(http.MethodGet, "/categories/"+categoryID.String()+"/lessons", nil)
	resp, err := newApp(NewLessonController(db), userID).Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Data []struct {
			Status        string `json:"status"`
			QuestionCount int    `json:"question_count"`
			Embed         *struct {
				Provider string `json:"provider"`
			} `json:"embed"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &body))
	require.Len(t, body.Data, 3)

	assert.Equal(t, "completed", body.Data[0].Status)
	assert.Equal(t, "youtube", body.Data[0].Embed.Provider)
	assert.Equal(t, "available", body.Data[1].Status)
	assert.Equal(t, 5, body.Data[1].QuestionCount)
	assert.Equal(t, "locked", body.Data[2].Status)
	assert.Nil(t, body.Data[2].Embed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetail_LockedIsForbidden(t *testing.T) {
	db, mock := testdb.New(t)
	userID, categoryID := uuid.New(), uuid.New()
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE lesson_id = \$1`).
		WithArgs(second, 1).
		WillReturnRows(sqlmock.NewRows(lessonCols).AddRow(second.String(), categoryID.String(), "Código de conduta", nil, 1))
	mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE lesson_category_id = \$1`).
		WillReturnRows(sqlmock.NewRows(lessonCols).
			AddRow(first.String(), categoryID.String(), "Boas-vindas", nil, 0).
			AddRow(second.String(), categoryID.String(), "Código de conduta", nil, 1))
	mock.ExpectQuery(`FROM "lesson_completions"`).
		WillReturnRows(sqlmock.NewRows([]string{"lesson_completion_lesson_id"}))

	req := httptest.NewRequest(http.MethodGet, "/lessons/"+second.String(), nil)
	resp, err := newApp(NewLessonController(db), userID).Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_TooShort(t *testing.T) {
	db, _ := testdb.New(t)
	req := httptest.NewRequest(http.MethodGet, "/lessons/search?q=a", nil)
	resp, err := newApp(NewLessonController(db), uuid.New()).Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSearch_SQLFallback(t *testing.T) {
	db, mock := testdb.New(t)

	mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE \(lesson_title ILIKE \$1 OR lesson_description ILIKE \$2\)`).
		WithArgs("%lgpd%", "%lgpd%", 20).
		WillReturnRows(sqlmock.NewRows(lessonCols).AddRow(uuid.NewString(), uuid.NewString(), "LGPD na prática", nil, 0))

	req := httptest.NewRequest(http.MethodGet, "/lessons/search?q=lgpd", nil)
	resp, err := newApp(NewLessonController(db), uuid.New()).Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
