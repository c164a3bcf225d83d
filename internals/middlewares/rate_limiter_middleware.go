package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "capacitajun_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, key func(*fiber.Ctx) string, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   window,
		KeyGenerator: key,
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

func byIP(c *fiber.Ctx) string { return c.IP() }

// byUser keys on the authenticated user and falls back to the client IP.
func byUser(c *fiber.Ctx) string {
	if id, ok := c.Locals(helper.LocUserID).(string); ok && id != "" {
		return "u:" + id
	}
	return "ip:" + c.IP()
}

// Global limiter: every endpoint
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, byIP,
		"Muitas requisições. Tente novamente mais tarde.")
}

// Login is stricter
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, byIP,
		"Muitas tentativas de login. Aguarde um momento.")
}

func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, byIP,
		"Muitas tentativas de cadastro. Aguarde alguns minutos.")
}

// AIRateLimiter caps content generation per user; must run after auth.
func AIRateLimiter() fiber.Handler {
	return newLimiter(10, time.Minute, byUser,
		"Limite de uso da IA atingido. Tente novamente mais tarde.")
}
