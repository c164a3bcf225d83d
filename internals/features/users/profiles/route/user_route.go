package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "capacitajun_backend/internals/features/users/profiles/controller"
)

func ProfileUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	profile := router.Group("/profile")
	profile.Get("/", ctrl.GetMyProfile)
	profile.Patch("/", ctrl.UpdateMyProfile)
}
