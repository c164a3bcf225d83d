package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/tools/shared_links/controller"
)

func SharedLinkPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSharedLinkController(db)
	public.Get("/links", ctrl.List)
}

func SharedLinkAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSharedLinkController(db)

	links := admin.Group("/links")
	links.Get("/", ctrl.List)
	links.Post("/", ctrl.Create)
	links.Put("/:id", ctrl.Update)
	links.Delete("/:id", ctrl.Delete)
}
