package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/configs"
	database "capacitajun_backend/internals/databases"
	"capacitajun_backend/internals/helpers/metrics"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, m *metrics.Metrics) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("CapacitaJun API 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(db); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		env := ""
		if configs.Config != nil {
			env = configs.Config.Env
		}
		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    env,
		})
	})

	if m != nil {
		app.Get("/metrics", m.Handler())
	}
}
