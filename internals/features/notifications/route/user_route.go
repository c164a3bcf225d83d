package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notification := user.Group("/notifications")
	notification.Get("/", ctrl.List)
	notification.Post("/read-all", ctrl.MarkAllRead)
	notification.Patch("/:id/read", ctrl.MarkRead)
	notification.Delete("/:id", ctrl.Delete)
}
