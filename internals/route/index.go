package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tokorakit_backend/internals/constants"
	productRoute "tokorakit_backend/internals/features/catalog/products/route"
	stockRoute "tokorakit_backend/internals/features/catalog/stock/route"
	deliveryRoute "tokorakit_backend/internals/features/orders/delivery/route"
	orderRoute "tokorakit_backend/internals/features/orders/order/route"
	paymentRoute "tokorakit_backend/internals/features/orders/payment/route"
	feedbackRoute "tokorakit_backend/internals/features/others/feedbacks/route"
	notificationRoute "tokorakit_backend/internals/features/others/notifications/route"
	addressRoute "tokorakit_backend/internals/features/shopping/addresses/route"
	cartRoute "tokorakit_backend/internals/features/shopping/carts/route"
	referenceRoute "tokorakit_backend/internals/features/shopping/references/route"
	wishlistRoute "tokorakit_backend/internals/features/shopping/wishlists/route"
	authRoute "tokorakit_backend/internals/features/users/auth/route"
	userRoute "tokorakit_backend/internals/features/users/user/route"
	authMiddleware "tokorakit_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT wajib
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN → JWT + role admin/superadmin
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Akses khusus staf toko", constants.StaffRoles...),
	)

	// SUPERADMIN
	superadmin := app.Group("/api/s",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Akses khusus superadmin", constants.SuperadminOnly...),
	)

	// WEBHOOK → tanpa auth, diverifikasi signature
	webhook := app.Group("/api")

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Catalog routes...")
	productRoute.CatalogPublicRoutes(public, db)
	productRoute.CatalogAdminRoutes(admin, db)
	stockRoute.StockAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Shopping routes...")
	cartRoute.CartRoutes(private, db)
	wishlistRoute.WishlistRoutes(private, db)
	addressRoute.AddressRoutes(private, db)
	addressRoute.RegionPublicRoutes(public, db)
	referenceRoute.ReferencePublicRoutes(public, db)
	referenceRoute.ReferenceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Order routes...")
	orderRoute.OrderUserRoutes(private, db)
	orderRoute.OrderAdminRoutes(admin, db)
	paymentRoute.PaymentUserRoutes(private, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	paymentRoute.PaymentWebhookRoutes(webhook, db)
	deliveryRoute.DeliveryUserRoutes(private, db)
	deliveryRoute.DeliveryAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Others routes...")
	feedbackRoute.FeedbackUserRoutes(private, db)
	feedbackRoute.FeedbackAdminRoutes(admin, db)
	notificationRoute.NotificationRoutes(private, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(private, db)
	userRoute.UserAdminRoutes(superadmin, db)
}
