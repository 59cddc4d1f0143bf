package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deliveryController "tokorakit_backend/internals/features/orders/delivery/controller"
)

func DeliveryUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := deliveryController.NewDeliveryController(db)

	api.Get("/orders/:orderId/delivery", ctrl.GetMyDelivery)
}

func DeliveryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := deliveryController.NewDeliveryController(db)

	api.Patch("/orders/:orderId/delivery", ctrl.UpdateDelivery)
	api.Post("/orders/:orderId/delivery/proof", ctrl.UploadDeliveryProof)
}
