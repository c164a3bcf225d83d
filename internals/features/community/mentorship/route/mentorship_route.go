package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/community/mentorship/controller"
)

func MentorshipUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMentorshipController(db)

	user.Get("/mentors", ctrl.Mentors)

	m := user.Group("/mentorship")
	m.Get("/", ctrl.List)
	m.Post("/", ctrl.Create)
	m.Patch("/:id/accept", ctrl.Accept())
	m.Patch("/:id/decline", ctrl.Decline())
	m.Patch("/:id/cancel", ctrl.Cancel())
}
