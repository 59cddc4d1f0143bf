package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productDTO "tokorakit_backend/internals/features/catalog/products/dto"
	productModel "tokorakit_backend/internals/features/catalog/products/model"
	helper "tokorakit_backend/internals/helpers"
)

type BrandController struct {
	DB *gorm.DB
}

func NewBrandController(db *gorm.DB) *BrandController {
	return &BrandController{DB: db}
}

// GET /api/public/brands
func (ctrl *BrandController) ListBrands(c *fiber.Ctx) error {
	var brands []productModel.Brand
	if err := ctrl.DB.Where("brand_is_active = TRUE").
		Order("brand_name ASC").
		Find(&brands).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil brand")
	}
	return helper.JsonOK(c, "ok", brands)
}

// POST /api/a/brands
func (ctrl *BrandController) CreateBrand(c *fiber.Ctx) error {
	var req productDTO.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "brands",
		SlugColumn:       "brand_slug",
		SoftDeleteColumn: "deleted_at",
		DefaultBase:      "brand",
	}, req.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	m := productModel.Brand{
		BrandName:     req.Name,
		BrandSlug:     slug,
		BrandIsActive: true,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat brand")
	}
	return helper.JsonCreated(c, "Brand dibuat", m)
}

// DELETE /api/a/brands/:id (soft delete)
func (ctrl *BrandController) DeleteBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID brand tidak valid")
	}
	res := ctrl.DB.Where("brand_id = ?", id).Delete(&productModel.Brand{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus brand")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Brand tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Brand dihapus", fiber.Map{"brand_id": id})
}
