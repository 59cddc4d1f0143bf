package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
	stockDTO "tokorakit_backend/internals/features/catalog/stock/dto"
	stockModel "tokorakit_backend/internals/features/catalog/stock/model"
	stockService "tokorakit_backend/internals/features/catalog/stock/service"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type StockController struct {
	DB *gorm.DB
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db}
}

// POST /api/a/stock-entries
// Semua mutasi stok lewat sini: baris produk dikunci selama transaksi
// supaya stok dan ledger tidak pernah selisih.
func (ctrl *StockController) RecordMovement(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req stockDTO.RecordMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	productID, _ := uuid.Parse(req.ProductID)

	var entry stockModel.StockEntry
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var product productModel.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "product_id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
			}
			return err
		}

		newStock, err := stockService.ApplyMovement(product.ProductStock, stockModel.MovementType(req.Type), req.Quantity)
		if err != nil {
			if errors.Is(err, stockService.ErrInsufficientStock) {
				return fiber.NewError(fiber.StatusBadRequest, "Stok tidak mencukupi untuk pergerakan keluar")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		entry = stockModel.StockEntry{
			StockEntryProductID: productID,
			StockEntryUserID:    userID,
			StockEntryType:      stockModel.MovementType(req.Type),
			StockEntryQuantity:  req.Quantity,
			StockEntryNote:      req.Note,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		newStatus := stockService.DeriveStockStatus(newStock, product.ProductStatusStock)
		return tx.Model(&productModel.Product{}).
			Where("product_id = ?", productID).
			Updates(map[string]any{
				"product_stock":        newStock,
				"product_status_stock": newStatus,
			}).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat pergerakan stok")
	}

	return helper.JsonCreated(c, "Pergerakan stok dicatat", stockDTO.ToStockEntryResponse(entry))
}

// DELETE /api/a/stock-entries/:id
// Menghapus entri membalik efeknya dulu, dalam transaksi yang sama.
func (ctrl *StockController) DeleteMovement(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID entri tidak valid")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var entry stockModel.StockEntry
		if err := tx.First(&entry, "stock_entry_id = ?", entryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Entri stok tidak ditemukan")
			}
			return err
		}

		var product productModel.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "product_id = ?", entry.StockEntryProductID).Error; err != nil {
			return err
		}

		newStock, err := stockService.ReverseMovement(product.ProductStock, entry.StockEntryType, entry.StockEntryQuantity)
		if err != nil {
			if errors.Is(err, stockService.ErrInsufficientStock) {
				return fiber.NewError(fiber.StatusConflict, "Entri tidak bisa dihapus karena stok akan menjadi negatif")
			}
			return err
		}

		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}

		newStatus := stockService.DeriveStockStatus(newStock, product.ProductStatusStock)
		return tx.Model(&productModel.Product{}).
			Where("product_id = ?", entry.StockEntryProductID).
			Updates(map[string]any{
				"product_stock":        newStock,
				"product_status_stock": newStatus,
			}).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus entri stok")
	}

	return helper.JsonDeleted(c, "Entri stok dihapus", fiber.Map{"stock_entry_id": entryID})
}

// GET /api/a/products/:productId/stock-entries (terbaru dulu)
func (ctrl *StockController) ListMovements(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctrl.DB.Model(&stockModel.StockEntry{}).
		Where("stock_entry_product_id = ?", productID)
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung entri stok")
	}

	var entries []stockModel.StockEntry
	if err := base.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil entri stok")
	}

	out := make([]stockDTO.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, stockDTO.ToStockEntryResponse(e))
	}
	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", out, &pagination)
}
