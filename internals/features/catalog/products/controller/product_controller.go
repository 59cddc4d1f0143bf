// 📁 internals/features/catalog/products/controller/product_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	productDTO "tokorakit_backend/internals/features/catalog/products/dto"
	productModel "tokorakit_backend/internals/features/catalog/products/model"
	helper "tokorakit_backend/internals/helpers"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

var validate = validator.New()

/* =======================================================
   PUBLIC: katalog
======================================================= */

// GET /api/public/products — pagination + filter kategori/sub/brand + search
func (ctrl *ProductController) ListProducts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&productModel.Product{}).
		Where("product_is_active = TRUE")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("lower(product_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if catID, err := uuid.Parse(c.Query("category_id")); err == nil {
		q = q.Where("product_category_id = ?", catID)
	}
	if subID, err := uuid.Parse(c.Query("sub_category_id")); err == nil {
		q = q.Where("product_sub_category_id = ?", subID)
	}
	if brandID, err := uuid.Parse(c.Query("brand_id")); err == nil {
		q = q.Where("product_brand_id = ?", brandID)
	}
	if status := c.Query("status_stock"); productModel.StockStatus(status).Valid() {
		q = q.Where("product_status_stock = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung produk")
	}

	var products []productModel.Product
	if err := q.Preload("Category").Preload("Brand").
		Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	out := make([]productDTO.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productDTO.ToProductResponse(p))
	}
	p := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", out, &p)
}

// GET /api/public/products/:slug
func (ctrl *ProductController) GetProductBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var product productModel.Product
	if err := ctrl.DB.Preload("Category").Preload("SubCategory").Preload("Brand").
		Where("product_slug = ? AND product_is_active = TRUE", slug).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}
	return helper.JsonOK(c, "ok", productDTO.ToProductResponse(product))
}

/* =======================================================
   ADMIN
======================================================= */

// POST /api/a/products
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var req productDTO.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// FK kategori & brand harus ada dan aktif
		var cnt int64
		if err := tx.Model(&productModel.Category{}).
			Where("category_id = ? AND category_is_active = TRUE", m.ProductCategoryID).
			Count(&cnt).Error; err != nil || cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori tidak ditemukan atau nonaktif")
		}
		if err := tx.Model(&productModel.Brand{}).
			Where("brand_id = ? AND brand_is_active = TRUE", m.ProductBrandID).
			Count(&cnt).Error; err != nil || cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Brand tidak ditemukan atau nonaktif")
		}

		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:            "products",
			SlugColumn:       "product_slug",
			SoftDeleteColumn: "deleted_at",
			DefaultBase:      "produk",
		}, m.ProductName)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.ProductSlug = slug

		if err := tx.Create(&m).Error; err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				return fiber.NewError(fiber.StatusConflict, "Slug produk sudah digunakan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat produk")
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat produk")
	}

	return helper.JsonCreated(c, "Produk berhasil dibuat", productDTO.ToProductResponse(m))
}

// PATCH /api/a/products/:id
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var req productDTO.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var product productModel.Product
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["product_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["product_description"] = *req.Description
	}
	if req.Highlights != nil {
		updates["product_highlights"] = pq.StringArray(req.Highlights)
	}
	if req.Price != nil {
		updates["product_price"] = *req.Price
	}
	if req.Weight != nil {
		updates["product_weight"] = *req.Weight
	}
	if req.IsActive != nil {
		updates["product_is_active"] = *req.IsActive
	}
	if req.CategoryID != nil {
		catID, _ := uuid.Parse(*req.CategoryID)
		updates["product_category_id"] = catID
	}
	if req.SubCategoryID != nil {
		subID, _ := uuid.Parse(*req.SubCategoryID)
		updates["product_sub_category_id"] = subID
	}
	if req.BrandID != nil {
		brandID, _ := uuid.Parse(*req.BrandID)
		updates["product_brand_id"] = brandID
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&product).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui produk")
	}

	if err := ctrl.DB.Preload("Category").Preload("SubCategory").Preload("Brand").
		First(&product, "product_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}
	return helper.JsonUpdated(c, "Produk diperbarui", productDTO.ToProductResponse(product))
}

// POST /api/a/products/:id/image (multipart)
func (ctrl *ProductController) UploadProductImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib diunggah")
	}

	var product productModel.Product
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	path, err := helper.SaveImageAsWebP("products", fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	old := product.ProductImage
	if err := ctrl.DB.Model(&product).Update("product_image", path).Error; err != nil {
		_ = helper.DeleteUploadedImage(path)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar produk")
	}
	if old != nil {
		_ = helper.DeleteUploadedImage(*old)
	}

	product.ProductImage = &path
	return helper.JsonUpdated(c, "Gambar produk diperbarui", productDTO.ToProductResponse(product))
}

// PATCH /api/a/products/:id/pre-order — aksi eksplisit masuk/keluar pre_order.
// Recompute otomatis di stock ledger tidak pernah menurunkan pre_order sendiri.
func (ctrl *ProductController) SetPreOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var req productDTO.SetPreOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var product productModel.Product
	if err := ctrl.DB.First(&product, "product_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	newStatus := productModel.StockPreOrder
	if !req.PreOrder {
		// keluar dari pre_order: status mengikuti stok aktual
		newStatus = productModel.StockEmpty
		if product.ProductStock > 0 {
			newStatus = productModel.StockReady
		}
	}

	if err := ctrl.DB.Model(&product).Update("product_status_stock", newStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status stok")
	}
	product.ProductStatusStock = newStatus
	return helper.JsonUpdated(c, "Status stok produk diubah", productDTO.ToProductResponse(product))
}

// DELETE /api/a/products/:id (soft delete)
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	res := ctrl.DB.Where("product_id = ?", id).Delete(&productModel.Product{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus produk")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Produk dihapus", fiber.Map{"product_id": id})
}
