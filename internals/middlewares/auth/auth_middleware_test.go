package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helper "capacitajun_backend/internals/helpers"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func newTestApp(o Options) *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthJWT(o), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(helper.LocUserID),
			"role":    c.Locals(helper.LocUserRole),
			"name":    c.Locals(helper.LocUserName),
			"raw":     c.Locals(helper.LocRawToken) != nil,
		})
	})
	return app
}

func do(t *testing.T, app *fiber.App, token string, cookie bool) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		if cookie {
			req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		} else {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestAuthJWT_ValidToken(t *testing.T) {
	userID := uuid.New()
	app := newTestApp(Options{
		Secret:        testSecret,
		IsBlacklisted: func(context.Context, string) (bool, error) { return false, nil },
		EnsureActive:  func(context.Context, uuid.UUID) error { return nil },
	})
	token := signToken(t, jwt.MapClaims{
		"id":        userID.String(),
		"role":      "learner",
		"user_name": "Ana",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	for _, viaCookie := range []bool{false, true} {
		status, body := do(t, app, token, viaCookie)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, userID.String())
		assert.Contains(t, body, `"role":"learner"`)
		assert.Contains(t, body, `"raw":true`)
	}
}

func TestAuthJWT_MissingToken(t *testing.T) {
	called := false
	app := newTestApp(Options{
		Secret: testSecret,
		IsBlacklisted: func(context.Context, string) (bool, error) {
			called = true
			return false, nil
		},
	})

	status, body := do(t, app, "", false)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "UNAUTHORIZED")
	assert.False(t, called, "no lookup before a token is present")
}

func TestAuthJWT_BadSignature(t *testing.T) {
	app := newTestApp(Options{Secret: "other-secret"})
	token := signToken(t, jwt.MapClaims{"id": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix()})

	status, _ := do(t, app, token, false)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthJWT_ExpirySkew(t *testing.T) {
	now := time.Now()
	app := newTestApp(Options{Secret: testSecret, Now: func() time.Time { return now }})

	within := signToken(t, jwt.MapClaims{"id": uuid.NewString(), "exp": now.Add(-20 * time.Second).Unix()})
	status, _ := do(t, app, within, false)
	assert.Equal(t, fiber.StatusOK, status)

	past := signToken(t, jwt.MapClaims{"id": uuid.NewString(), "exp": now.Add(-time.Minute).Unix()})
	status, _ = do(t, app, past, false)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthJWT_Blacklisted(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix()})
	app := newTestApp(Options{
		Secret: testSecret,
		IsBlacklisted: func(_ context.Context, hash string) (bool, error) {
			return hash == helper.HashToken(token), nil
		},
	})

	status, _ := do(t, app, token, false)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthJWT_UserStates(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix()})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown user", gorm.ErrRecordNotFound, fiber.StatusUnauthorized},
		{"inactive", ErrUserInactive, fiber.StatusForbidden},
		{"db down", errors.New("connection refused"), fiber.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(Options{
				Secret:       testSecret,
				EnsureActive: func(context.Context, uuid.UUID) error { return tc.err },
			})
			status, _ := do(t, app, token, false)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestOnlyRolesSlice(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		if r := c.Get("X-Role"); r != "" {
			c.Locals(helper.LocUserRole, r)
		}
		return c.Next()
	}, OnlyRoles("somente admin", "admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	cases := map[string]int{"admin": fiber.StatusNoContent, "learner": fiber.StatusForbidden, "": fiber.StatusUnauthorized}
	for role, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if role != "" {
			req.Header.Set("X-Role", role)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "role %q", role)
	}
}
