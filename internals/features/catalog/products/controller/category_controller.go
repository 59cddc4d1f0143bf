package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productDTO "tokorakit_backend/internals/features/catalog/products/dto"
	productModel "tokorakit_backend/internals/features/catalog/products/model"
	helper "tokorakit_backend/internals/helpers"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GET /api/public/categories — kategori aktif + sub-kategorinya
func (ctrl *CategoryController) ListCategories(c *fiber.Ctx) error {
	var categories []productModel.Category
	if err := ctrl.DB.Where("category_is_active = TRUE").
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	var subs []productModel.SubCategory
	if err := ctrl.DB.Where("sub_category_is_active = TRUE").
		Order("sub_category_name ASC").
		Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sub-kategori")
	}

	byCategory := map[uuid.UUID][]productModel.SubCategory{}
	for _, s := range subs {
		byCategory[s.SubCategoryCategoryID] = append(byCategory[s.SubCategoryCategoryID], s)
	}

	type categoryWithSubs struct {
		productModel.Category
		SubCategories []productModel.SubCategory `json:"sub_categories"`
	}
	out := make([]categoryWithSubs, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryWithSubs{Category: cat, SubCategories: byCategory[cat.CategoryID]})
	}
	return helper.JsonOK(c, "ok", out)
}

// POST /api/a/categories
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req productDTO.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "categories",
		SlugColumn:       "category_slug",
		SoftDeleteColumn: "deleted_at",
		DefaultBase:      "kategori",
	}, req.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	m := productModel.Category{
		CategoryName:     req.Name,
		CategorySlug:     slug,
		CategoryIsActive: true,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}
	return helper.JsonCreated(c, "Kategori dibuat", m)
}

// POST /api/a/sub-categories
func (ctrl *CategoryController) CreateSubCategory(c *fiber.Ctx) error {
	var req productDTO.CreateSubCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	catID, _ := uuid.Parse(req.CategoryID)
	var parent productModel.Category
	if err := ctrl.DB.First(&parent, "category_id = ?", catID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori induk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kategori induk")
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "sub_categories",
		SlugColumn:       "sub_category_slug",
		SoftDeleteColumn: "deleted_at",
		DefaultBase:      "sub-kategori",
	}, req.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	m := productModel.SubCategory{
		SubCategoryCategoryID: catID,
		SubCategoryName:       req.Name,
		SubCategorySlug:       slug,
		SubCategoryIsActive:   true,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sub-kategori")
	}
	return helper.JsonCreated(c, "Sub-kategori dibuat", m)
}

// DELETE /api/a/categories/:id (soft delete)
func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kategori tidak valid")
	}
	res := ctrl.DB.Where("category_id = ?", id).Delete(&productModel.Category{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kategori dihapus", fiber.Map{"category_id": id})
}
