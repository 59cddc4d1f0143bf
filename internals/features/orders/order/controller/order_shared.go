package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
)

func loadOrderableProduct(tx *gorm.DB, productID uuid.UUID) (*productModel.Product, error) {
	var product productModel.Product
	if err := tx.First(&product, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Ada produk yang tidak ditemukan")
		}
		return nil, err
	}
	if !product.Orderable() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Ada produk yang sudah tidak tersedia")
	}
	return &product, nil
}
