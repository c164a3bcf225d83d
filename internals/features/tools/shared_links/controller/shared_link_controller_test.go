package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/testdb"
)

func TestList_FiltersByCategory(t *testing.T) {
	db, mock := testdb.New(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "shared_links" WHERE shared_link_category = \$1`).
		WithArgs("rh").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "shared_links" WHERE shared_link_category = \$1 AND "shared_links"."deleted_at" IS NULL ORDER BY shared_link_category ASC, created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"shared_link_id", "shared_link_title", "shared_link_url", "shared_link_category"}).
			AddRow(uuid.NewString(), "Portal RH", "https://rh.capacitajun.app", "rh"))

	app := fiber.New()
	app.Get("/links", NewSharedLinkController(db).List)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/links?category=RH", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RejectsBadURL(t *testing.T) {
	db, _ := testdb.New(t)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, uuid.NewString())
		return c.Next()
	})
	app.Post("/links", NewSharedLinkController(db).Create)

	req := httptest.NewRequest(http.MethodPost, "/links", strings.NewReader(`{"title":"Portal","url":"não é url"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
