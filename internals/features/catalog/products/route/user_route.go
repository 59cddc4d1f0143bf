package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productController "tokorakit_backend/internals/features/catalog/products/controller"
)

// CatalogPublicRoutes: katalog publik, tanpa login
func CatalogPublicRoutes(api fiber.Router, db *gorm.DB) {
	productCtrl := productController.NewProductController(db)
	categoryCtrl := productController.NewCategoryController(db)
	brandCtrl := productController.NewBrandController(db)

	api.Get("/products", productCtrl.ListProducts)
	api.Get("/products/:slug", productCtrl.GetProductBySlug)
	api.Get("/categories", categoryCtrl.ListCategories)
	api.Get("/brands", brandCtrl.ListBrands)
}
