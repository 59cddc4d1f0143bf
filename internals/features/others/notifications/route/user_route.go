package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "tokorakit_backend/internals/features/others/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	notifications := api.Group("/notifications")
	notifications.Get("/", ctrl.ListMyNotifications)
	notifications.Patch("/read-all", ctrl.MarkAllRead)
	notifications.Patch("/:id/read", ctrl.MarkRead)
}
