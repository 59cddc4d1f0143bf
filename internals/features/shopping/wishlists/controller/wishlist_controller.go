package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
	wishlistDTO "tokorakit_backend/internals/features/shopping/wishlists/dto"
	wishlistModel "tokorakit_backend/internals/features/shopping/wishlists/model"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type WishlistController struct {
	DB *gorm.DB
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{DB: db}
}

// GET /api/u/wishlists
func (ctrl *WishlistController) ListMyWishlist(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var items []wishlistModel.Wishlist
	if err := ctrl.DB.Preload("Product").
		Where("wishlist_user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil wishlist")
	}
	return helper.JsonOK(c, "ok", items)
}

// POST /api/u/wishlists
func (ctrl *WishlistController) AddToWishlist(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req wishlistDTO.AddWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	productID, _ := uuid.Parse(req.ProductID)

	var exists int64
	if err := ctrl.DB.Model(&productModel.Product{}).
		Where("product_id = ?", productID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek produk")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	item := wishlistModel.Wishlist{
		WishlistUserID:    userID,
		WishlistProductID: productID,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusConflict, "Produk sudah ada di wishlist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah wishlist")
	}
	return helper.JsonCreated(c, "Produk ditambahkan ke wishlist", item)
}

// DELETE /api/u/wishlists/:id
func (ctrl *WishlistController) RemoveFromWishlist(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	wishlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID wishlist tidak valid")
	}

	res := ctrl.DB.Where("wishlist_id = ? AND wishlist_user_id = ?", wishlistID, userID).
		Delete(&wishlistModel.Wishlist{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus wishlist")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Item wishlist tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Item wishlist dihapus", fiber.Map{"wishlist_id": wishlistID})
}
