package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stockController "tokorakit_backend/internals/features/catalog/stock/controller"
)

// StockAdminRoutes: seluruh mutasi stok hanya untuk staf
func StockAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := stockController.NewStockController(db)

	api.Post("/stock-entries", ctrl.RecordMovement)
	api.Delete("/stock-entries/:id", ctrl.DeleteMovement)
	api.Get("/products/:productId/stock-entries", ctrl.ListMovements)
}
