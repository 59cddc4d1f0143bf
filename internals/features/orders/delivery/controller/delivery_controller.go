package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	deliveryDTO "tokorakit_backend/internals/features/orders/delivery/dto"
	deliveryModel "tokorakit_backend/internals/features/orders/delivery/model"
	orderModel "tokorakit_backend/internals/features/orders/order/model"
	orderService "tokorakit_backend/internals/features/orders/order/service"
	notificationService "tokorakit_backend/internals/features/others/notifications/service"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type DeliveryController struct {
	DB *gorm.DB
}

func NewDeliveryController(db *gorm.DB) *DeliveryController {
	return &DeliveryController{DB: db}
}

// GET /api/u/orders/:orderId/delivery
func (ctrl *DeliveryController) GetMyDelivery(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var count int64
	if err := ctrl.DB.Model(&orderModel.Order{}).
		Where("order_id = ? AND order_user_id = ?", orderID, userID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek pesanan")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pesanan tidak ditemukan")
	}

	var delivery deliveryModel.OrderDelivery
	if err := ctrl.DB.First(&delivery, "order_delivery_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data pengiriman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengiriman")
	}
	return helper.JsonOK(c, "ok", delivery)
}

// PATCH /api/a/orders/:orderId/delivery
// Mengisi resi (kirim) atau menandai siap diambil (ambil) memindahkan
// pesanan dari diproses ke dikirim.
func (ctrl *DeliveryController) UpdateDelivery(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var req deliveryDTO.UpdateDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var order orderModel.Order
		if err := tx.First(&order, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pesanan tidak ditemukan")
			}
			return err
		}
		if !orderService.CanUpdateDelivery(order.OrderStatus) {
			return fiber.NewError(fiber.StatusConflict, "Pesanan belum diproses atau sudah selesai")
		}

		var delivery deliveryModel.OrderDelivery
		if err := tx.First(&delivery, "order_delivery_order_id = ?", orderID).Error; err != nil {
			return err
		}
		if delivery.OrderDeliveryPickupMethod == deliveryModel.PickupKirim &&
			(req.TrackingNumber == nil || *req.TrackingNumber == "") &&
			delivery.OrderDeliveryTrackingNumber == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Nomor resi wajib diisi untuk pesanan kirim")
		}

		updates := map[string]any{}
		if req.TrackingNumber != nil {
			updates["order_delivery_tracking_number"] = *req.TrackingNumber
		}
		if req.EstimatedArrival != nil {
			eta, err := time.Parse("2006-01-02", *req.EstimatedArrival)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tanggal estimasi tidak valid")
			}
			updates["order_delivery_estimated_arrival"] = eta
		}
		if req.Note != nil {
			updates["order_delivery_note"] = *req.Note
		}
		if len(updates) > 0 {
			if err := tx.Model(&deliveryModel.OrderDelivery{}).
				Where("order_delivery_order_id = ?", orderID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		// koreksi setelah dikirim hanya mengubah data pengiriman,
		// perpindahan status terjadi sekali dari diproses
		if order.OrderStatus != orderModel.StatusDiproses {
			return nil
		}
		res := tx.Model(&orderModel.Order{}).
			Where("order_id = ? AND order_status = ?", orderID, orderModel.StatusDiproses).
			Update("order_status", orderModel.StatusDikirim)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah")
		}
		return notificationService.NotifyOrderStatus(tx, order.OrderUserID, orderID,
			order.OrderInvoiceNumber, string(orderModel.StatusDikirim))
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengiriman")
	}

	return helper.JsonUpdated(c, "Data pengiriman diperbarui", fiber.Map{
		"order_id":     orderID,
		"order_status": orderModel.StatusDikirim,
	})
}

// POST /api/a/orders/:orderId/delivery/proof (multipart)
func (ctrl *DeliveryController) UploadDeliveryProof(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	fileHeader, err := c.FormFile("proof_image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto bukti wajib dilampirkan")
	}

	var delivery deliveryModel.OrderDelivery
	if err := ctrl.DB.First(&delivery, "order_delivery_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data pengiriman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengiriman")
	}

	proofPath, err := helper.SaveImageAsWebP("delivery-proofs", fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto bukti tidak bisa diproses")
	}

	oldImage := delivery.OrderDeliveryProofImage
	if err := ctrl.DB.Model(&deliveryModel.OrderDelivery{}).
		Where("order_delivery_order_id = ?", orderID).
		Update("order_delivery_proof_image", proofPath).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto bukti")
	}
	if oldImage != nil {
		_ = helper.DeleteUploadedImage(*oldImage)
	}

	return helper.JsonUpdated(c, "Foto bukti pengiriman tersimpan", fiber.Map{
		"order_id":    orderID,
		"proof_image": proofPath,
	})
}
