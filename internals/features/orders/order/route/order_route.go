package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "tokorakit_backend/internals/features/orders/order/controller"
)

func OrderUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)

	api.Post("/checkout", ctrl.Checkout)
	api.Post("/checkout/custom-pc", ctrl.CheckoutCustomPC)

	orders := api.Group("/orders")
	orders.Get("/", ctrl.ListMyOrders)
	orders.Get("/:id", ctrl.GetMyOrder)
	orders.Patch("/:id/cancel", ctrl.CancelMyOrder)
	orders.Patch("/:id/confirm-receipt", ctrl.ConfirmReceipt)
}

func OrderAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)

	orders := api.Group("/orders")
	orders.Get("/", ctrl.ListOrders)
	orders.Post("/approve-all-pending", ctrl.ApproveAllPending)
	orders.Get("/:id", ctrl.GetOrder)
	orders.Patch("/:id/approve", ctrl.ApproveOrder)
	orders.Patch("/:id/reject", ctrl.RejectOrder)
	orders.Patch("/:id/mark-finished", ctrl.MarkFinished)
}
