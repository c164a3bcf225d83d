package controller

import (
	"bufio"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/features/community/groups/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/pubsub"
	"capacitajun_backend/internals/helpers/testdb"
)

func TestWriteEvent(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	require.NoError(t, WriteEvent(w, "message", []byte(`{"content":"oi"}`)))
	assert.Equal(t, "event: message\ndata: {\"content\":\"oi\"}\n\n", buf.String())
}

func TestStream_NonMemberForbidden(t *testing.T) {
	db, mock := testdb.New(t)
	broker := pubsub.NewMemory()
	group := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "group_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, uuid.NewString())
		return c.Next()
	})
	app.Get("/groups/:id/stream", NewGroupController(service.New(db, broker)).Stream)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/groups/"+group.String()+"/stream", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Zero(t, broker.Subscribers(service.Channel(group)))
}
