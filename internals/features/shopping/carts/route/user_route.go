package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cartController "tokorakit_backend/internals/features/shopping/carts/controller"
)

func CartRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := cartController.NewCartController(db)

	carts := api.Group("/carts")
	carts.Get("/", ctrl.ListMyCart)
	carts.Post("/", ctrl.AddToCart)
	carts.Patch("/:id", ctrl.UpdateQuantity)
	carts.Delete("/:id", ctrl.RemoveFromCart)
}
