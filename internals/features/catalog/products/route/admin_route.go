package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productController "tokorakit_backend/internals/features/catalog/products/controller"
)

// CatalogAdminRoutes: CRUD katalog untuk admin
func CatalogAdminRoutes(api fiber.Router, db *gorm.DB) {
	productCtrl := productController.NewProductController(db)
	categoryCtrl := productController.NewCategoryController(db)
	brandCtrl := productController.NewBrandController(db)

	products := api.Group("/products")
	products.Post("/", productCtrl.CreateProduct)
	products.Patch("/:id", productCtrl.UpdateProduct)
	products.Post("/:id/image", productCtrl.UploadProductImage)
	products.Patch("/:id/pre-order", productCtrl.SetPreOrder)
	products.Delete("/:id", productCtrl.DeleteProduct)

	api.Post("/categories", categoryCtrl.CreateCategory)
	api.Delete("/categories/:id", categoryCtrl.DeleteCategory)
	api.Post("/sub-categories", categoryCtrl.CreateSubCategory)

	api.Post("/brands", brandCtrl.CreateBrand)
	api.Delete("/brands/:id", brandCtrl.DeleteBrand)
}
