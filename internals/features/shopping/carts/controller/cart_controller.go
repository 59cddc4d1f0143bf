package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
	cartDTO "tokorakit_backend/internals/features/shopping/carts/dto"
	cartModel "tokorakit_backend/internals/features/shopping/carts/model"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// GET /api/u/carts
func (ctrl *CartController) ListMyCart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var carts []cartModel.Cart
	if err := ctrl.DB.Preload("Product").
		Where("cart_user_id = ?", userID).
		Order("created_at DESC").
		Find(&carts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil keranjang")
	}
	return helper.JsonOK(c, "ok", carts)
}

// POST /api/u/carts
// Produk yang sudah ada di keranjang tidak diduplikasi, kuantitasnya ditambah.
func (ctrl *CartController) AddToCart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req cartDTO.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	productID, _ := uuid.Parse(req.ProductID)

	var cart cartModel.Cart
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var product productModel.Product
		if err := tx.First(&product, "product_id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
			}
			return err
		}
		if !product.Orderable() {
			return fiber.NewError(fiber.StatusBadRequest, "Produk tidak tersedia untuk dipesan")
		}

		err := tx.Where("cart_user_id = ? AND cart_product_id = ?", userID, productID).
			First(&cart).Error
		switch {
		case err == nil:
			if err := tx.Model(&cart).
				Update("cart_quantity", gorm.Expr("cart_quantity + ?", req.Quantity)).Error; err != nil {
				return err
			}
			cart.CartQuantity += req.Quantity
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			cart = cartModel.Cart{
				CartUserID:    userID,
				CartProductID: productID,
				CartQuantity:  req.Quantity,
			}
			return tx.Create(&cart).Error
		default:
			return err
		}
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah ke keranjang")
	}

	return helper.JsonCreated(c, "Produk ditambahkan ke keranjang", cart)
}

// PATCH /api/u/carts/:id
func (ctrl *CartController) UpdateQuantity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	cartID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID keranjang tidak valid")
	}

	var req cartDTO.UpdateCartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	res := ctrl.DB.Model(&cartModel.Cart{}).
		Where("cart_id = ? AND cart_user_id = ?", cartID, userID).
		Update("cart_quantity", req.Quantity)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah kuantitas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Item keranjang tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Kuantitas diperbarui", fiber.Map{"cart_id": cartID, "quantity": req.Quantity})
}

// DELETE /api/u/carts/:id
func (ctrl *CartController) RemoveFromCart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	cartID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID keranjang tidak valid")
	}

	res := ctrl.DB.Where("cart_id = ? AND cart_user_id = ?", cartID, userID).
		Delete(&cartModel.Cart{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus item keranjang")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Item keranjang tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Item keranjang dihapus", fiber.Map{"cart_id": cartID})
}
