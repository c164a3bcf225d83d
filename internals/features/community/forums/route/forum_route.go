package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/community/forums/controller"
)

func ForumUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewForumController(db)

	forum := user.Group("/forum")
	forum.Get("/posts", ctrl.List)
	forum.Get("/posts/:id", ctrl.Get)
	forum.Post("/posts", ctrl.Create)
	forum.Put("/posts/:id", ctrl.Update)
	forum.Delete("/posts/:id", ctrl.Delete)
	forum.Post("/posts/:id/replies", ctrl.Reply)
	forum.Delete("/replies/:id", ctrl.DeleteReply)
}

func ForumAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewForumController(db)

	forum := admin.Group("/forum")
	forum.Patch("/posts/:id/pin", ctrl.Pin)
	forum.Delete("/posts/:id", ctrl.Delete)
	forum.Delete("/replies/:id", ctrl.DeleteReply)
}
