package database

import (
	"log"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
	stockModel "tokorakit_backend/internals/features/catalog/stock/model"
	deliveryModel "tokorakit_backend/internals/features/orders/delivery/model"
	orderModel "tokorakit_backend/internals/features/orders/order/model"
	paymentModel "tokorakit_backend/internals/features/orders/payment/model"
	feedbackModel "tokorakit_backend/internals/features/others/feedbacks/model"
	notificationModel "tokorakit_backend/internals/features/others/notifications/model"
	addressModel "tokorakit_backend/internals/features/shopping/addresses/model"
	cartModel "tokorakit_backend/internals/features/shopping/carts/model"
	referenceModel "tokorakit_backend/internals/features/shopping/references/model"
	wishlistModel "tokorakit_backend/internals/features/shopping/wishlists/model"
	authModel "tokorakit_backend/internals/features/users/auth/model"
	userModel "tokorakit_backend/internals/features/users/user/model"
)

// RunMigrations menyamakan skema dengan model (RUN_MIGRATIONS=true).
// Urutan mengikuti arah foreign key: induk dulu, anak belakangan.
func RunMigrations() {
	log.Println("[DB] Menjalankan migrasi skema...")

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},

		&productModel.Category{},
		&productModel.SubCategory{},
		&productModel.Brand{},
		&productModel.Product{},
		&stockModel.StockEntry{},

		&addressModel.Province{},
		&addressModel.City{},
		&addressModel.ShippingAddress{},
		&referenceModel.Courier{},
		&referenceModel.PaymentMethod{},
		&cartModel.Cart{},
		&wishlistModel.Wishlist{},

		&orderModel.Order{},
		&orderModel.OrderItem{},
		&orderModel.CustomPCOrder{},
		&orderModel.CustomPCComponent{},
		&orderModel.OrderNote{},
		&paymentModel.PaymentConfirmation{},
		&deliveryModel.OrderDelivery{},

		&feedbackModel.Feedback{},
		&notificationModel.Notification{},
	)
	if err != nil {
		log.Fatalf("[DB] Migrasi gagal: %v", err)
	}

	log.Println("[DB] Migrasi selesai")
}
