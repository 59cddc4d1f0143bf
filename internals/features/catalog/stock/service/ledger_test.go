package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
	stockModel "tokorakit_backend/internals/features/catalog/stock/model"
)

func TestApplyMovement(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		typ      stockModel.MovementType
		qty      int
		want     int
		wantErr  error
	}{
		{name: "barang masuk menambah stok", stock: 3, typ: stockModel.MovementIn, qty: 7, want: 10},
		{name: "barang keluar mengurangi stok", stock: 10, typ: stockModel.MovementOut, qty: 4, want: 6},
		{name: "keluar persis sebesar stok", stock: 5, typ: stockModel.MovementOut, qty: 5, want: 0},
		{name: "keluar melebihi stok ditolak", stock: 5, typ: stockModel.MovementOut, qty: 6, want: 5, wantErr: ErrInsufficientStock},
		{name: "keluar saat stok nol ditolak", stock: 0, typ: stockModel.MovementOut, qty: 1, want: 0, wantErr: ErrInsufficientStock},
		{name: "kuantitas nol ditolak", stock: 5, typ: stockModel.MovementIn, qty: 0, want: 5, wantErr: ErrInvalidQuantity},
		{name: "kuantitas negatif ditolak", stock: 5, typ: stockModel.MovementOut, qty: -2, want: 5, wantErr: ErrInvalidQuantity},
		{name: "tipe tidak dikenal ditolak", stock: 5, typ: stockModel.MovementType("adjust"), qty: 1, want: 5, wantErr: ErrUnknownMovementType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyMovement(tt.stock, tt.typ, tt.qty)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReverseMovement(t *testing.T) {
	t.Run("membatalkan entri keluar mengembalikan stok", func(t *testing.T) {
		got, err := ReverseMovement(6, stockModel.MovementOut, 4)
		require.NoError(t, err)
		assert.Equal(t, 10, got)
	})

	t.Run("membatalkan entri masuk mengurangi stok", func(t *testing.T) {
		got, err := ReverseMovement(10, stockModel.MovementIn, 4)
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	t.Run("pembatalan tidak boleh membuat stok negatif", func(t *testing.T) {
		got, err := ReverseMovement(2, stockModel.MovementIn, 5)
		require.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 2, got)
	})
}

// Jumlah bertanda seluruh entri yang masih hidup harus selalu sama
// dengan stok produk.
func TestLedgerSumInvariant(t *testing.T) {
	type movement struct {
		typ stockModel.MovementType
		qty int
	}
	movements := []movement{
		{stockModel.MovementIn, 10},
		{stockModel.MovementOut, 3},
		{stockModel.MovementIn, 5},
		{stockModel.MovementOut, 12},
	}

	stock := 0
	signedSum := 0
	for _, m := range movements {
		next, err := ApplyMovement(stock, m.typ, m.qty)
		require.NoError(t, err)
		stock = next
		if m.typ == stockModel.MovementIn {
			signedSum += m.qty
		} else {
			signedSum -= m.qty
		}
	}
	assert.Equal(t, signedSum, stock)

	// hapus satu entri masuk, stok harus turun sebesar entri itu
	stock, err := ReverseMovement(stock, stockModel.MovementIn, 5)
	require.NoError(t, err)
	assert.Equal(t, signedSum-5, stock)
}

func TestDeriveStockStatus(t *testing.T) {
	tests := []struct {
		name    string
		stock   int
		current productModel.StockStatus
		want    productModel.StockStatus
	}{
		{name: "stok positif selalu ready", stock: 3, current: productModel.StockEmpty, want: productModel.StockReady},
		{name: "stok positif menimpa pre_order", stock: 1, current: productModel.StockPreOrder, want: productModel.StockReady},
		{name: "stok nol dari ready menjadi habis", stock: 0, current: productModel.StockReady, want: productModel.StockEmpty},
		{name: "pre_order lengket saat stok nol", stock: 0, current: productModel.StockPreOrder, want: productModel.StockPreOrder},
		{name: "stok nol dari habis tetap habis", stock: 0, current: productModel.StockEmpty, want: productModel.StockEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStockStatus(tt.stock, tt.current))
		})
	}
}

// Skenario: stok 5 ready, keluar 5, lalu keluar 1 lagi.
func TestOutToZeroThenInsufficient(t *testing.T) {
	stock, err := ApplyMovement(5, stockModel.MovementOut, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)
	assert.Equal(t, productModel.StockEmpty, DeriveStockStatus(stock, productModel.StockReady))

	_, err = ApplyMovement(stock, stockModel.MovementOut, 1)
	require.ErrorIs(t, err, ErrInsufficientStock)
}
