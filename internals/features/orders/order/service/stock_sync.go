package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
	stockModel "tokorakit_backend/internals/features/catalog/stock/model"
	stockService "tokorakit_backend/internals/features/catalog/stock/service"
)

// Semua perubahan stok akibat pesanan tetap lewat ledger supaya jumlah
// entri bertanda selalu sama dengan stok produk.

// DeductForOrder mengurangi stok satu produk untuk checkout. Produk
// pre_order dengan stok nol tidak dikurangi (dipenuhi lewat pemesanan
// ke pemasok, bukan dari rak).
func DeductForOrder(tx *gorm.DB, productID, actorID uuid.UUID, quantity int, invoiceNumber string) error {
	var product productModel.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "product_id = ?", productID).Error; err != nil {
		return err
	}

	if product.ProductStatusStock == productModel.StockPreOrder && product.ProductStock < quantity {
		return nil
	}

	newStock, err := stockService.ApplyMovement(product.ProductStock, stockModel.MovementOut, quantity)
	if err != nil {
		return err
	}

	note := fmt.Sprintf("checkout %s", invoiceNumber)
	entry := stockModel.StockEntry{
		StockEntryProductID: productID,
		StockEntryUserID:    actorID,
		StockEntryType:      stockModel.MovementOut,
		StockEntryQuantity:  quantity,
		StockEntryNote:      &note,
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
}

// RestockForOrder mengembalikan stok seluruh baris pesanan saat pesanan
// dibatalkan atau ditolak. Hanya entri keluar milik invoice tersebut
// yang dikompensasi, jadi produk pre_order yang tidak pernah dikurangi
// tidak ikut bertambah.
func RestockForOrder(tx *gorm.DB, actorID uuid.UUID, invoiceNumber string) error {
	note := fmt.Sprintf("checkout %s", invoiceNumber)

	var outEntries []stockModel.StockEntry
	if err := tx.Where("stock_entry_type = ? AND stock_entry_note = ?", stockModel.MovementOut, note).
		Find(&outEntries).Error; err != nil {
		return err
	}

	returnNote := fmt.Sprintf("pembatalan %s", invoiceNumber)
	for _, out := range outEntries {
		var product productModel.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "product_id = ?", out.StockEntryProductID).Error; err != nil {
			return err
		}

		newStock, err := stockService.ApplyMovement(product.ProductStock, stockModel.MovementIn, out.StockEntryQuantity)
		if err != nil {
			return err
		}

		entry := stockModel.StockEntry{
			StockEntryProductID: out.StockEntryProductID,
			StockEntryUserID:    actorID,
			StockEntryType:      stockModel.MovementIn,
			StockEntryQuantity:  out.StockEntryQuantity,
			StockEntryNote:      &returnNote,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		newStatus := stockService.DeriveStockStatus(newStock, product.ProductStatusStock)
		if err := tx.Model(&productModel.Product{}).
			Where("product_id = ?", out.StockEntryProductID).
			Updates(map[string]any{
				"product_stock":        newStock,
				"product_status_stock": newStatus,
			}).Error; err != nil {
			return err
		}
	}
	return nil
}
