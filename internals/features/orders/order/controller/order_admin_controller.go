package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	deliveryModel "tokorakit_backend/internals/features/orders/delivery/model"
	orderDTO "tokorakit_backend/internals/features/orders/order/dto"
	orderModel "tokorakit_backend/internals/features/orders/order/model"
	orderService "tokorakit_backend/internals/features/orders/order/service"
	notificationService "tokorakit_backend/internals/features/others/notifications/service"
	helper "tokorakit_backend/internals/helpers"
)

// GET /api/a/orders
func (ctrl *OrderController) ListOrders(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&orderModel.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("order_status = ?", status)
	}
	if orderType := c.Query("type"); orderType != "" {
		query = query.Where("order_type = ?", orderType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesanan")
	}

	var orders []orderModel.Order
	if err := query.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesanan")
	}

	out := make([]orderDTO.OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderDTO.ToOrderSummaryResponse(o))
	}
	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", out, &pagination)
}

// GET /api/a/orders/:id
func (ctrl *OrderController) GetOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var order orderModel.Order
	if err := ctrl.DB.
		Preload("Items.Product").
		Preload("CustomPCOrder.Components.Product").
		Preload("Notes").
		First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesanan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesanan")
	}
	return helper.JsonOK(c, "ok", order)
}

// isi transisi menunggu_verifikasi -> menunggu_pembayaran untuk satu
// pesanan; dipakai endpoint approve tunggal dan approve-all.
func (ctrl *OrderController) approveOne(tx *gorm.DB, orderID uuid.UUID, shippingCost int64) error {
	var order orderModel.Order
	if err := tx.First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pesanan tidak ditemukan")
		}
		return err
	}
	if err := orderService.ValidateTransition(order.OrderStatus, orderModel.StatusMenungguPembayaran); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Pesanan tidak sedang menunggu verifikasi")
	}

	var delivery deliveryModel.OrderDelivery
	if err := tx.First(&delivery, "order_delivery_order_id = ?", orderID).Error; err != nil {
		return err
	}
	if err := orderService.ValidateApproval(delivery.OrderDeliveryPickupMethod, shippingCost); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res := tx.Model(&orderModel.Order{}).
		Where("order_id = ? AND order_status = ?", orderID, orderModel.StatusMenungguVerifikasi).
		Update("order_status", orderModel.StatusMenungguPembayaran)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah")
	}

	if delivery.OrderDeliveryPickupMethod == deliveryModel.PickupKirim {
		if err := tx.Model(&deliveryModel.OrderDelivery{}).
			Where("order_delivery_order_id = ?", orderID).
			Update("order_delivery_shipping_cost", shippingCost).Error; err != nil {
			return err
		}
	}

	return notificationService.NotifyOrderStatus(tx, order.OrderUserID, orderID,
		order.OrderInvoiceNumber, string(orderModel.StatusMenungguPembayaran))
}

// PATCH /api/a/orders/:id/approve
func (ctrl *OrderController) ApproveOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var req orderDTO.ApproveOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	shippingCost := int64(0)
	if req.ShippingCost != nil {
		shippingCost = *req.ShippingCost
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return ctrl.approveOne(tx, orderID, shippingCost)
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyetujui pesanan")
	}

	return helper.JsonUpdated(c, "Pesanan disetujui", fiber.Map{
		"order_id":     orderID,
		"order_status": orderModel.StatusMenungguPembayaran,
	})
}

// PATCH /api/a/orders/:id/reject
func (ctrl *OrderController) RejectOrder(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var req orderDTO.RejectOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := orderService.ValidateRejectionNote(req.Note); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var order orderModel.Order
		if err := tx.First(&order, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pesanan tidak ditemukan")
			}
			return err
		}
		if err := orderService.ValidateTransition(order.OrderStatus, orderModel.StatusDibatalkan); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Pesanan tidak bisa ditolak dari status sekarang")
		}

		res := tx.Model(&orderModel.Order{}).
			Where("order_id = ? AND order_status = ?", orderID, order.OrderStatus).
			Update("order_status", orderModel.StatusDibatalkan)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah")
		}

		note := orderModel.OrderNote{
			OrderNoteOrderID: orderID,
			OrderNoteUserID:  adminID,
			OrderNoteBody:    req.Note,
		}
		if err := tx.Create(&note).Error; err != nil {
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menolak pesanan")
	}

	return helper.JsonUpdated(c, "Pesanan ditolak", fiber.Map{
		"order_id":     orderID,
		"order_status": orderModel.StatusDibatalkan,
	})
}

// POST /api/a/orders/approve-all-pending
// Batch best-effort: tiap pesanan transaksinya sendiri, kegagalan satu
// pesanan tidak membatalkan yang lain. Hasil dilaporkan per item.
func (ctrl *OrderController) ApproveAllPending(c *fiber.Ctx) error {
	var pending []orderModel.Order
	if err := ctrl.DB.
		Where("order_status = ? AND order_type = ?", orderModel.StatusMenungguVerifikasi, orderModel.TypeProduct).
		Order("created_at ASC").
		Find(&pending).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesanan tertunda")
	}

	results := make([]orderDTO.ApproveAllResultItem, 0, len(pending))
	for _, order := range pending {
		item := orderDTO.ApproveAllResultItem{
			OrderID:       order.OrderID,
			InvoiceNumber: order.OrderInvoiceNumber,
		}
		err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
			return ctrl.approveOne(tx, order.OrderID, 0)
		})
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				item.Message = fe.Message
			} else {
				item.Message = "kesalahan internal"
			}
		} else {
			item.Success = true
			item.Message = "disetujui"
		}
		results = append(results, item)
	}

	return helper.JsonOK(c, "Selesai memproses pesanan tertunda", results)
}

// PATCH /api/a/orders/:id/mark-finished
// Satu arah, hanya dari dikirim.
func (ctrl *OrderController) MarkFinished(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var order orderModel.Order
		if err := tx.First(&order, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pesanan tidak ditemukan")
			}
			return err
		}
		if err := orderService.ValidateTransition(order.OrderStatus, orderModel.StatusSelesai); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Pesanan belum dikirim atau sudah selesai")
		}

		now := time.Now()
		res := tx.Model(&orderModel.Order{}).
			Where("order_id = ? AND order_status = ?", orderID, orderModel.StatusDikirim).
			Updates(map[string]any{
				"order_status":      orderModel.StatusSelesai,
				"order_finished_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah")
		}
		return notificationService.NotifyOrderStatus(tx, order.OrderUserID, orderID,
			order.OrderInvoiceNumber, string(orderModel.StatusSelesai))
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyelesaikan pesanan")
	}

	return helper.JsonUpdated(c, "Pesanan ditandai selesai", fiber.Map{
		"order_id":     orderID,
		"order_status": orderModel.StatusSelesai,
	})
}
