package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/cafe/controller"
)

func CafeUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCafeController(db)

	cafe := user.Group("/cafe")
	cafe.Get("/presets", ctrl.ListPresets)
	cafe.Post("/presets", ctrl.CreatePreset)
	cafe.Put("/presets/:id", ctrl.UpdatePreset)
	cafe.Delete("/presets/:id", ctrl.DeletePreset)

	cafe.Post("/sessions", ctrl.StartSession)
	cafe.Get("/sessions/stats", ctrl.Stats)
	cafe.Patch("/sessions/:id/finish", ctrl.FinishSession)
}
