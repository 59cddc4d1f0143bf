package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wishlistController "tokorakit_backend/internals/features/shopping/wishlists/controller"
)

func WishlistRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := wishlistController.NewWishlistController(db)

	wishlists := api.Group("/wishlists")
	wishlists.Get("/", ctrl.ListMyWishlist)
	wishlists.Post("/", ctrl.AddToWishlist)
	wishlists.Delete("/:id", ctrl.RemoveFromWishlist)
}
