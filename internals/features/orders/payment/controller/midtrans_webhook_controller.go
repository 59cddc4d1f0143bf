package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tokorakit_backend/internals/configs"
	orderModel "tokorakit_backend/internals/features/orders/order/model"
	orderService "tokorakit_backend/internals/features/orders/order/service"
	notificationService "tokorakit_backend/internals/features/others/notifications/service"
	helper "tokorakit_backend/internals/helpers"
)

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

func validSignature(n midtransNotification) bool {
	// tanpa server key digest bisa dihitung siapa saja, jadi selalu tolak
	if configs.MidtransServerKey == "" {
		return false
	}
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + configs.MidtransServerKey))
	return hex.EncodeToString(sum[:]) == n.SignatureKey
}

// POST /api/payments/midtrans/notification
// Webhook dari Midtrans, tanpa auth. Idempoten: notifikasi ulang untuk
// pesanan yang sudah final dijawab 200 tanpa mutasi.
func (ctrl *PaymentController) MidtransNotification(c *fiber.Ctx) error {
	if configs.MidtransServerKey == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Channel Midtrans tidak aktif")
	}

	var notif midtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}
	if !validSignature(notif) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Signature tidak cocok")
	}

	var order orderModel.Order
	if err := ctrl.DB.First(&order, "order_invoice_number = ?", notif.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesanan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesanan")
	}

	switch notif.TransactionStatus {
	case "settlement", "capture":
		if notif.TransactionStatus == "capture" && notif.FraudStatus == "challenge" {
			return helper.JsonOK(c, "ok", fiber.Map{"ignored": true})
		}
		txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
			now := time.Now()
			res := tx.Model(&orderModel.Order{}).
				Where("order_id = ? AND order_status = ? AND order_payment_status = ?",
					order.OrderID, orderModel.StatusMenungguPembayaran, orderModel.PaymentBelumBayar).
				Updates(map[string]any{
					"order_payment_status": orderModel.PaymentSudahBayar,
					"order_paid_at":        now,
					"order_status":         orderModel.StatusDiproses,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// sudah diproses lewat kanal lain, biarkan
				return nil
			}
			return notificationService.NotifyOrderStatus(tx, order.OrderUserID, order.OrderID,
				order.OrderInvoiceNumber, string(orderModel.StatusDiproses))
		})
		if txErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
		}
	case "deny", "cancel", "expire":
		txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&orderModel.Order{}).
				Where("order_id = ? AND order_status = ?", order.OrderID, orderModel.StatusMenungguPembayaran).
				Updates(map[string]any{
					"order_payment_status": orderModel.PaymentGagal,
					"order_status":         orderModel.StatusDibatalkan,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			if err := orderService.RestockForOrder(tx, order.OrderUserID, order.OrderInvoiceNumber); err != nil {
				return err
			}
			return notificationService.NotifyOrderStatus(tx, order.OrderUserID, order.OrderID,
				order.OrderInvoiceNumber, string(orderModel.StatusDibatalkan))
		})
		if txErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi")
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{"order_id": notif.OrderID, "transaction_status": notif.TransactionStatus})
}
