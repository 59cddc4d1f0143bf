package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "tokorakit_backend/internals/features/orders/payment/controller"
)

func PaymentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	api.Post("/orders/:orderId/payment-confirmation", ctrl.SubmitConfirmation)
	api.Post("/orders/:orderId/midtrans/snap-token", ctrl.CreateSnapToken)
}

func PaymentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	api.Patch("/orders/:orderId/payment-confirmation/verify", ctrl.VerifyConfirmation)
}

// PaymentWebhookRoutes dipasang tanpa middleware auth; endpoint ini
// diverifikasi lewat signature Midtrans.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	api.Post("/payments/midtrans/notification", ctrl.MidtransNotification)
}
