package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/admin/backgrounds/controller"
	"capacitajun_backend/internals/features/admin/backgrounds/service"
	"capacitajun_backend/internals/helpers/storage"
)

func BackgroundPublicRoutes(public fiber.Router, db *gorm.DB, st storage.Storage) {
	ctrl := controller.NewBackgroundController(service.New(db, st))
	public.Get("/backgrounds", ctrl.Active)
}

func BackgroundAdminRoutes(admin fiber.Router, db *gorm.DB, st storage.Storage) {
	ctrl := controller.NewBackgroundController(service.New(db, st))

	bg := admin.Group("/backgrounds")
	bg.Get("/", ctrl.List)
	bg.Post("/", ctrl.Upload)
	bg.Patch("/:id", ctrl.Patch)
	bg.Delete("/:id", ctrl.Delete)
}
