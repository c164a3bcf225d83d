package service

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
	"gorm.io/gorm"

	"capacitajun_backend/internals/configs"
	"capacitajun_backend/internals/helpers/testdb"
)

func newAuthApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Post("/register", func(c *fiber.Ctx) error { return Register(db, c) })
	app.Post("/login", func(c *fiber.Ctx) error { return Login(db, c) })
	app.Post("/logout", func(c *fiber.Ctx) error { return Logout(db, c) })
	return app
}

func post(t *testing.T, app *fiber.App, path, body string, header map[string]string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func TestRegister_Validation(t *testing.T) {
	db, mock := testdb.New(t)
	app := newAuthApp(db)

	resp, body := post(t, app, "/register", `{"email":"not-an-email","password":"short","full_name":"A"}`, nil)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, `"email"`)
	assert.Contains(t, body, `"password"`)
	assert.Contains(t, body, `"full_name"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin(t *testing.T) {
	configs.JWTSecret = "test-secret"
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	userID := uuid.New()

	loginRow := func(active bool) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "email", "password", "profile_full_name", "profile_role", "profile_is_active"}).
			AddRow(userID.String(), "ana@empresa.com", hash, "Ana Souza", "learner", active)
	}

	t.Run("wrong password", func(t *testing.T) {
		db, mock := testdb.New(t)
		mock.ExpectQuery(`SELECT users\.id, users\.email, users\.password`).WillReturnRows(loginRow(true))

		resp, _ := post(t, newAuthApp(db), "/login", `{"email":"ana@empresa.com","password":"wrong-pass"}`, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email", func(t *testing.T) {
		db, mock := testdb.New(t)
		mock.ExpectQuery(`SELECT users\.id`).WillReturnError(gorm.ErrRecordNotFound)

		resp, body := post(t, newAuthApp(db), "/login", `{"email":"x@empresa.com","password":"whatever1"}`, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "E-mail ou senha incorretos")
	})

	t.Run("inactive", func(t *testing.T) {
		db, mock := testdb.New(t)
		mock.ExpectQuery(`SELECT users\.id`).WillReturnRows(loginRow(false))

		resp, _ := post(t, newAuthApp(db), "/login", `{"email":"ana@empresa.com","password":"correct-horse"}`, nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		db, mock := testdb.New(t)
		mock.ExpectQuery(`SELECT users\.id`).WillReturnRows(loginRow(true))
		mock.ExpectQuery(`SELECT profiles\.\*, users\.email FROM "profiles"`).
			WillReturnRows(sqlmock.NewRows([]string{"profile_id", "profile_full_name", "profile_role", "profile_is_active", "created_at", "email"}).
				AddRow(userID.String(), "Ana Souza", "learner", true, time.Now(), "ana@empresa.com"))

		resp, body := post(t, newAuthApp(db), "/login", `{"email":"ana@empresa.com","password":"correct-horse"}`, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"access_token"`)
		assert.Contains(t, body, `"token_type":"Bearer"`)
		assert.Contains(t, resp.Header.Get("Set-Cookie"), "access_token=")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLogout_BlacklistsHashedToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	token, _, err := IssueAccessToken("test-secret", uuid.New(), "learner", "Ana", time.Now(), time.Hour)
	require.NoError(t, err)

	db, mock := testdb.New(t)
	mock.ExpectQuery(`INSERT INTO "token_blacklist"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	resp, _ := post(t, newAuthApp(db), "/logout", "", map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "access_token=;")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout_WithoutToken(t *testing.T) {
	db, mock := testdb.New(t)

	resp, _ := post(t, newAuthApp(db), "/logout", "", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
