package service

import (
	"errors"

	orderModel "tokorakit_backend/internals/features/orders/order/model"
)

var ErrAlreadyVerified = errors.New("konfirmasi sudah pernah diverifikasi")

// EnsureNotVerified menahan verifikasi ganda: keputusan hanya boleh
// diambil selama kolom is_verified masih kosong. Keputusan pertama
// (diterima maupun ditolak) mengunci konfirmasi selamanya.
func EnsureNotVerified(isVerified *bool) error {
	if isVerified != nil {
		return ErrAlreadyVerified
	}
	return nil
}

// VerificationOutcome memetakan keputusan admin ke status pembayaran
// dan status pesanan hasilnya.
func VerificationOutcome(approved bool) (orderModel.PaymentStatus, orderModel.OrderStatus) {
	if approved {
		return orderModel.PaymentSudahBayar, orderModel.StatusDiproses
	}
	return orderModel.PaymentGagal, orderModel.StatusDibatalkan
}
