package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notificationModel "tokorakit_backend/internals/features/others/notifications/model"
)

var statusMessages = map[string]string{
	"menunggu_pembayaran": "Pesanan kamu disetujui, silakan lakukan pembayaran.",
	"diproses":            "Pembayaran diterima, pesanan kamu sedang diproses.",
	"dikirim":             "Pesanan kamu sudah dikirim.",
	"selesai":             "Pesanan kamu selesai. Terima kasih sudah berbelanja.",
	"dibatalkan":          "Pesanan kamu dibatalkan.",
}

// NotifyOrderStatus menulis notifikasi perubahan status pesanan.
// Dipanggil di dalam transaksi yang sama dengan perubahan statusnya.
func NotifyOrderStatus(tx *gorm.DB, userID, orderID uuid.UUID, invoiceNumber, newStatus string) error {
	body, ok := statusMessages[newStatus]
	if !ok {
		body = fmt.Sprintf("Status pesanan kamu berubah menjadi %s.", newStatus)
	}

	payload := datatypes.JSON(fmt.Sprintf(
		`{"order_id":%q,"invoice_number":%q,"order_status":%q}`,
		orderID.String(), invoiceNumber, newStatus,
	))

	n := notificationModel.Notification{
		NotificationUserID:  userID,
		NotificationTitle:   fmt.Sprintf("Pesanan %s", invoiceNumber),
		NotificationBody:    body,
		NotificationPayload: payload,
	}
	return tx.Create(&n).Error
}
