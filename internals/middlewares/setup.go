package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"capacitajun_backend/internals/configs"
	"capacitajun_backend/internals/helpers/metrics"
	accesslog "capacitajun_backend/internals/middlewares/logger"
)

const requestTimeout = 5 * time.Second

// SetupMiddlewares installs the global chain in order.
func SetupMiddlewares(app *fiber.App, cfg *configs.AppConfig, m *metrics.Metrics) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(requestTimeout, LongRunning))
	app.Use(accesslog.LoggerMiddleware())
	if m != nil {
		app.Use(m.Middleware())
	}
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelDefault,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasSuffix(c.Path(), "/stream")
		},
	}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
