package service

import (
	"errors"
	"strings"

	deliveryModel "tokorakit_backend/internals/features/orders/delivery/model"
	orderModel "tokorakit_backend/internals/features/orders/order/model"
)

var (
	ErrInvalidTransition    = errors.New("perpindahan status pesanan tidak diizinkan")
	ErrShippingCostRequired = errors.New("ongkos kirim wajib diisi untuk pesanan yang dikirim")
	ErrNoteRequired         = errors.New("catatan alasan wajib diisi")
)

// transitions: dari -> himpunan status tujuan yang sah.
// selesai dan dibatalkan terminal, tidak pernah punya tujuan.
var transitions = map[orderModel.OrderStatus][]orderModel.OrderStatus{
	orderModel.StatusMenungguVerifikasi: {orderModel.StatusMenungguPembayaran, orderModel.StatusDibatalkan},
	orderModel.StatusMenungguPembayaran: {orderModel.StatusDiproses, orderModel.StatusDibatalkan},
	orderModel.StatusDiproses:           {orderModel.StatusDikirim},
	orderModel.StatusDikirim:            {orderModel.StatusSelesai},
}

// CanTransition melaporkan apakah perpindahan from -> to sah.
func CanTransition(from, to orderModel.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal: status yang tidak bisa ditinggalkan lagi.
func IsTerminal(s orderModel.OrderStatus) bool {
	return s == orderModel.StatusSelesai || s == orderModel.StatusDibatalkan
}

// ValidateTransition: CanTransition dengan error deskriptif.
func ValidateTransition(from, to orderModel.OrderStatus) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}

// CanUpdateDelivery: data pengiriman (resi, estimasi, catatan) masih
// boleh dikoreksi selama pesanan diproses atau sudah dikirim.
func CanUpdateDelivery(status orderModel.OrderStatus) bool {
	return status == orderModel.StatusDiproses || status == orderModel.StatusDikirim
}

// ValidateApproval menjaga syarat menyetujui pesanan: pesanan yang
// dikirim harus sudah punya ongkos kirim.
func ValidateApproval(pickupMethod deliveryModel.PickupMethod, shippingCost int64) error {
	if pickupMethod == deliveryModel.PickupKirim && shippingCost <= 0 {
		return ErrShippingCostRequired
	}
	return nil
}

// ValidateRejectionNote: penolakan dan pembatalan oleh admin butuh alasan.
func ValidateRejectionNote(note string) error {
	if strings.TrimSpace(note) == "" {
		return ErrNoteRequired
	}
	return nil
}

// CanCustomerCancel: pelanggan hanya boleh membatalkan sebelum pesanan
// disetujui untuk diproses.
func CanCustomerCancel(status orderModel.OrderStatus) bool {
	return status == orderModel.StatusMenungguVerifikasi
}
