package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	orderModel "tokorakit_backend/internals/features/orders/order/model"
	orderService "tokorakit_backend/internals/features/orders/order/service"
	paymentDTO "tokorakit_backend/internals/features/orders/payment/dto"
	paymentModel "tokorakit_backend/internals/features/orders/payment/model"
	paymentService "tokorakit_backend/internals/features/orders/payment/service"
	notificationService "tokorakit_backend/internals/features/others/notifications/service"
	userModel "tokorakit_backend/internals/features/users/user/model"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func parseTransferTime(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("format waktu transfer tidak dikenal")
}

// POST /api/u/orders/:orderId/payment-confirmation (multipart)
// Satu konfirmasi per pesanan, bukti transfer wajib dilampirkan.
func (ctrl *PaymentController) SubmitConfirmation(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var req paymentDTO.SubmitConfirmationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	transferTime, err := parseTransferTime(req.TransferTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile("proof_image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bukti transfer wajib dilampirkan")
	}

	var confirmation paymentModel.PaymentConfirmation
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var order orderModel.Order
		if err := tx.First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pesanan tidak ditemukan")
			}
			return err
		}
		if order.OrderStatus != orderModel.StatusMenungguPembayaran {
			return fiber.NewError(fiber.StatusConflict, "Pesanan tidak sedang menunggu pembayaran")
		}

		var existing int64
		if err := tx.Model(&paymentModel.PaymentConfirmation{}).
			Where("payment_confirmation_order_id = ?", orderID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusConflict, "Konfirmasi pembayaran sudah pernah dikirim")
		}

		proofPath, err := helper.SaveImageAsWebP("payment-proofs", fileHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bukti transfer tidak bisa diproses")
		}

		confirmation = paymentModel.PaymentConfirmation{
			PaymentConfirmationOrderID:       orderID,
			PaymentConfirmationUserID:        userID,
			PaymentConfirmationProofImage:    proofPath,
			PaymentConfirmationBankName:      req.BankName,
			PaymentConfirmationAccountNumber: req.AccountNumber,
			PaymentConfirmationTransferTime:  transferTime,
		}
		return tx.Create(&confirmation).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan konfirmasi pembayaran")
	}

	return helper.JsonCreated(c, "Konfirmasi pembayaran terkirim", confirmation)
}

// PATCH /api/a/orders/:orderId/payment-confirmation/verify
// is_verified hanya bisa diisi sekali. Hasilnya menjalar ke status
// pembayaran dan status pesanan dalam transaksi yang sama.
func (ctrl *PaymentController) VerifyConfirmation(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var req paymentDTO.VerifyConfirmationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if !*req.IsVerified {
		note := ""
		if req.Note != nil {
			note = *req.Note
		}
		if err := orderService.ValidateRejectionNote(note); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var confirmation paymentModel.PaymentConfirmation
		if err := tx.First(&confirmation, "payment_confirmation_order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Konfirmasi pembayaran tidak ditemukan")
			}
			return err
		}
		if err := paymentService.EnsureNotVerified(confirmation.PaymentConfirmationIsVerified); err != nil {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}

		var order orderModel.Order
		if err := tx.First(&order, "order_id = ?", orderID).Error; err != nil {
			return err
		}

		now := time.Now()
		// update bersyarat pada is_verified IS NULL menahan verifikasi ganda
		res := tx.Model(&paymentModel.PaymentConfirmation{}).
			Where("payment_confirmation_id = ? AND payment_confirmation_is_verified IS NULL", confirmation.PaymentConfirmationID).
			Updates(map[string]any{
				"payment_confirmation_is_verified": *req.IsVerified,
				"payment_confirmation_verified_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Konfirmasi sudah pernah diverifikasi")
		}

		paymentStatus, orderStatus := paymentService.VerificationOutcome(*req.IsVerified)
		if *req.IsVerified {
			resOrder := tx.Model(&orderModel.Order{}).
				Where("order_id = ? AND order_status = ?", orderID, orderModel.StatusMenungguPembayaran).
				Updates(map[string]any{
					"order_payment_status": paymentStatus,
					"order_paid_at":        now,
					"order_status":         orderStatus,
				})
			if resOrder.Error != nil {
				return resOrder.Error
			}
			if resOrder.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah")
			}
			return notificationService.NotifyOrderStatus(tx, order.OrderUserID, orderID,
				order.OrderInvoiceNumber, string(orderStatus))
		}

		resOrder := tx.Model(&orderModel.Order{}).
			Where("order_id = ? AND order_status = ?", orderID, orderModel.StatusMenungguPembayaran).
			Updates(map[string]any{
				"order_payment_status": paymentStatus,
				"order_status":         orderStatus,
			})
		if resOrder.Error != nil {
			return resOrder.Error
		}
		if resOrder.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah")
		}

		orderNote := orderModel.OrderNote{
			OrderNoteOrderID: orderID,
			OrderNoteUserID:  adminID,
			OrderNoteBody:    *req.Note,
		}
		if err := tx.Create(&orderNote).Error; err != nil {
			return err
		}
		if err := orderService.RestockForOrder(tx, adminID, order.OrderInvoiceNumber); err != nil {
			return err
		}
		return notificationService.NotifyOrderStatus(tx, order.OrderUserID, orderID,
			order.OrderInvoiceNumber, string(orderModel.StatusDibatalkan))
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi pembayaran")
	}

	return helper.JsonUpdated(c, "Verifikasi pembayaran tersimpan", fiber.Map{
		"order_id":    orderID,
		"is_verified": *req.IsVerified,
	})
}

// POST /api/u/orders/:orderId/midtrans/snap-token
// Kanal pembayaran alternatif lewat Midtrans Snap.
func (ctrl *PaymentController) CreateSnapToken(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var order orderModel.Order
	if err := ctrl.DB.First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesanan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesanan")
	}
	if order.OrderStatus != orderModel.StatusMenungguPembayaran {
		return helper.JsonError(c, fiber.StatusConflict, "Pesanan tidak sedang menunggu pembayaran")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	phone := ""
	if user.Phone != nil {
		phone = *user.Phone
	}
	token, redirectURL, err := paymentService.GenerateSnapToken(order, paymentService.CustomerInput{
		Name:  user.UserName,
		Email: user.Email,
		Phone: phone,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}
