package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	referenceController "tokorakit_backend/internals/features/shopping/references/controller"
)

func ReferencePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := referenceController.NewReferenceController(db)

	api.Get("/couriers", ctrl.ListCouriers)
	api.Get("/payment-methods", ctrl.ListPaymentMethods)
}

func ReferenceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := referenceController.NewReferenceController(db)

	api.Post("/couriers", ctrl.CreateCourier)
	api.Patch("/couriers/:id/toggle-active", ctrl.ToggleCourier)
	api.Post("/payment-methods", ctrl.CreatePaymentMethod)
	api.Patch("/payment-methods/:id/toggle-active", ctrl.TogglePaymentMethod)
}
