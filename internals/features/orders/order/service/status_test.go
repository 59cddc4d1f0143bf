package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryModel "tokorakit_backend/internals/features/orders/delivery/model"
	orderModel "tokorakit_backend/internals/features/orders/order/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from orderModel.OrderStatus
		to   orderModel.OrderStatus
		want bool
	}{
		{"verifikasi ke pembayaran", orderModel.StatusMenungguVerifikasi, orderModel.StatusMenungguPembayaran, true},
		{"verifikasi ke batal", orderModel.StatusMenungguVerifikasi, orderModel.StatusDibatalkan, true},
		{"pembayaran ke diproses", orderModel.StatusMenungguPembayaran, orderModel.StatusDiproses, true},
		{"pembayaran ke batal", orderModel.StatusMenungguPembayaran, orderModel.StatusDibatalkan, true},
		{"diproses ke dikirim", orderModel.StatusDiproses, orderModel.StatusDikirim, true},
		{"dikirim ke selesai", orderModel.StatusDikirim, orderModel.StatusSelesai, true},

		{"tidak boleh lompat tahap", orderModel.StatusMenungguVerifikasi, orderModel.StatusDiproses, false},
		{"tidak boleh mundur", orderModel.StatusDiproses, orderModel.StatusMenungguPembayaran, false},
		{"diproses tidak bisa dibatalkan", orderModel.StatusDiproses, orderModel.StatusDibatalkan, false},
		{"dikirim tidak bisa dibatalkan", orderModel.StatusDikirim, orderModel.StatusDibatalkan, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

// Pesanan selesai atau dibatalkan tidak boleh pindah ke status apa pun.
func TestTerminalStatesHaveNoExit(t *testing.T) {
	all := []orderModel.OrderStatus{
		orderModel.StatusMenungguVerifikasi,
		orderModel.StatusMenungguPembayaran,
		orderModel.StatusDiproses,
		orderModel.StatusDikirim,
		orderModel.StatusSelesai,
		orderModel.StatusDibatalkan,
	}
	for _, terminal := range []orderModel.OrderStatus{orderModel.StatusSelesai, orderModel.StatusDibatalkan} {
		require.True(t, IsTerminal(terminal))
		for _, to := range all {
			assert.Falsef(t, CanTransition(terminal, to), "%s -> %s harus ditolak", terminal, to)
		}
	}
}

func TestValidateApproval(t *testing.T) {
	t.Run("kirim tanpa ongkir ditolak", func(t *testing.T) {
		err := ValidateApproval(deliveryModel.PickupKirim, 0)
		require.ErrorIs(t, err, ErrShippingCostRequired)
	})

	t.Run("kirim dengan ongkir diterima", func(t *testing.T) {
		require.NoError(t, ValidateApproval(deliveryModel.PickupKirim, 15000))
	})

	t.Run("ambil tidak butuh ongkir", func(t *testing.T) {
		require.NoError(t, ValidateApproval(deliveryModel.PickupAmbil, 0))
	})
}

func TestValidateRejectionNote(t *testing.T) {
	require.ErrorIs(t, ValidateRejectionNote(""), ErrNoteRequired)
	require.ErrorIs(t, ValidateRejectionNote("   "), ErrNoteRequired)
	require.NoError(t, ValidateRejectionNote("bukti tidak jelas"))
}

func TestCanUpdateDelivery(t *testing.T) {
	// koreksi resi tetap boleh setelah pesanan dikirim
	assert.True(t, CanUpdateDelivery(orderModel.StatusDiproses))
	assert.True(t, CanUpdateDelivery(orderModel.StatusDikirim))

	assert.False(t, CanUpdateDelivery(orderModel.StatusMenungguVerifikasi))
	assert.False(t, CanUpdateDelivery(orderModel.StatusMenungguPembayaran))
	assert.False(t, CanUpdateDelivery(orderModel.StatusSelesai))
	assert.False(t, CanUpdateDelivery(orderModel.StatusDibatalkan))
}

func TestCanCustomerCancel(t *testing.T) {
	assert.True(t, CanCustomerCancel(orderModel.StatusMenungguVerifikasi))
	assert.False(t, CanCustomerCancel(orderModel.StatusMenungguPembayaran))
	assert.False(t, CanCustomerCancel(orderModel.StatusDiproses))
	assert.False(t, CanCustomerCancel(orderModel.StatusSelesai))
}
