package middlewares

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocRequestID    = "reqid"
)

// RequestContext tags the request with an id and bounds its user context.
// Requests matched by skip keep an unbounded context (streams, AI calls).
func RequestContext(timeout time.Duration, skip func(*fiber.Ctx) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderRequestID))
		if id == "" {
			id = utils.UUIDv4()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocRequestID, id)

		if timeout <= 0 || (skip != nil && skip(c)) {
			return c.Next()
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// LongRunning matches SSE streams and AI generation routes.
func LongRunning(c *fiber.Ctx) bool {
	p := c.Path()
	return strings.HasSuffix(p, "/stream") || strings.Contains(p, "/ai/")
}
