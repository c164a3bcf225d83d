package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/community/groups/controller"
	"capacitajun_backend/internals/features/community/groups/service"
	"capacitajun_backend/internals/helpers/pubsub"
)

func GroupUserRoutes(user fiber.Router, db *gorm.DB, broker pubsub.Broker) {
	ctrl := controller.NewGroupController(service.New(db, broker))

	groups := user.Group("/groups")
	groups.Get("/", ctrl.List)
	groups.Post("/", ctrl.Create)
	groups.Post("/:id/join", ctrl.Join)
	groups.Post("/:id/leave", ctrl.Leave)
	groups.Get("/:id/messages", ctrl.Messages)
	groups.Post("/:id/messages", ctrl.Post)
	groups.Get("/:id/stream", ctrl.Stream)
}
