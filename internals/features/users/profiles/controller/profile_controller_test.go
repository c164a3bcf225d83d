package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/testdb"
)

func newApp(ctrl *ProfileController, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, userID.String())
		return c.Next()
	})
	app.Get("/profile", ctrl.GetMyProfile)
	app.Patch("/profile", ctrl.UpdateMyProfile)
	app.Patch("/users/:id/role", ctrl.AdminUpdateRole)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestGetMyProfile(t *testing.T) {
	db, mock := testdb.New(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT profiles\.\*, users\.email FROM "profiles" JOIN users`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"profile_id", "profile_full_name", "profile_role", "profile_is_mentor", "profile_is_active", "created_at", "email",
		}).AddRow(userID.String(), "Ana Souza", "learner", false, true, time.Now(), "ana@empresa.com"))

	status, body := send(t, newApp(NewProfileController(db), userID), http.MethodGet, "/profile", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"full_name":"Ana Souza"`)
	assert.Contains(t, body, `"email":"ana@empresa.com"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMyProfile_EmptyBody(t *testing.T) {
	db, mock := testdb.New(t)

	status, body := send(t, newApp(NewProfileController(db), uuid.New()), http.MethodPatch, "/profile", `{}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "BAD_REQUEST")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminUpdateRole(t *testing.T) {
	adminID := uuid.New()

	t.Run("invalid role", func(t *testing.T) {
		db, _ := testdb.New(t)
		status, body := send(t, newApp(NewProfileController(db), adminID), http.MethodPatch,
			"/users/"+uuid.NewString()+"/role", `{"role":"owner"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Contains(t, body, `"role"`)
	})

	t.Run("cannot change self", func(t *testing.T) {
		db, mock := testdb.New(t)
		status, _ := send(t, newApp(NewProfileController(db), adminID), http.MethodPatch,
			"/users/"+adminID.String()+"/role", `{"role":"learner"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := testdb.New(t)
		mock.ExpectExec(`UPDATE "profiles" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		status, _ := send(t, newApp(NewProfileController(db), adminID), http.MethodPatch,
			"/users/"+uuid.NewString()+"/role", `{"role":"admin"}`)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
