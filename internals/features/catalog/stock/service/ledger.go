package service

import (
	"errors"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
	stockModel "tokorakit_backend/internals/features/catalog/stock/model"
)

var (
	ErrInvalidQuantity     = errors.New("kuantitas pergerakan stok harus lebih dari nol")
	ErrUnknownMovementType = errors.New("tipe pergerakan stok tidak dikenal")
	ErrInsufficientStock   = errors.New("stok tidak mencukupi")
)

// ApplyMovement menghitung stok baru setelah satu pergerakan.
// Pergerakan keluar tidak boleh melebihi stok saat ini.
func ApplyMovement(currentStock int, movementType stockModel.MovementType, quantity int) (int, error) {
	if quantity <= 0 {
		return currentStock, ErrInvalidQuantity
	}
	switch movementType {
	case stockModel.MovementIn:
		return currentStock + quantity, nil
	case stockModel.MovementOut:
		if quantity > currentStock {
			return currentStock, ErrInsufficientStock
		}
		return currentStock - quantity, nil
	default:
		return currentStock, ErrUnknownMovementType
	}
}

// ReverseMovement membatalkan efek satu entri ledger (untuk hapus entri).
// Membatalkan entri "in" berarti mengurangi stok, sehingga tetap dijaga
// agar stok tidak pernah negatif.
func ReverseMovement(currentStock int, movementType stockModel.MovementType, quantity int) (int, error) {
	switch movementType {
	case stockModel.MovementIn:
		return ApplyMovement(currentStock, stockModel.MovementOut, quantity)
	case stockModel.MovementOut:
		return ApplyMovement(currentStock, stockModel.MovementIn, quantity)
	default:
		return currentStock, ErrUnknownMovementType
	}
}

// DeriveStockStatus menurunkan status stok dari kuantitas terkini.
// Status pre_order bersifat lengket: stok nol tidak otomatis
// menurunkannya menjadi out_of_stock, hanya aksi admin yang bisa.
func DeriveStockStatus(stock int, current productModel.StockStatus) productModel.StockStatus {
	if stock > 0 {
		return productModel.StockReady
	}
	if current == productModel.StockPreOrder {
		return productModel.StockPreOrder
	}
	return productModel.StockEmpty
}
