package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	deliveryModel "tokorakit_backend/internals/features/orders/delivery/model"
	orderDTO "tokorakit_backend/internals/features/orders/order/dto"
	orderModel "tokorakit_backend/internals/features/orders/order/model"
	stockService "tokorakit_backend/internals/features/catalog/stock/service"
	orderService "tokorakit_backend/internals/features/orders/order/service"
	notificationService "tokorakit_backend/internals/features/others/notifications/service"
	addressModel "tokorakit_backend/internals/features/shopping/addresses/model"
	cartModel "tokorakit_backend/internals/features/shopping/carts/model"
	referenceModel "tokorakit_backend/internals/features/shopping/references/model"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// validasi referensi checkout yang berlaku untuk kedua bentuk pesanan
func (ctrl *OrderController) validateCheckoutRefs(tx *gorm.DB, userID uuid.UUID, pickupMethod string, addressID, courierID *string, paymentMethodID string) (*uuid.UUID, *uuid.UUID, *uuid.UUID, error) {
	pmID, err := uuid.Parse(paymentMethodID)
	if err != nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Metode pembayaran tidak valid")
	}
	var pmCount int64
	if err := tx.Model(&referenceModel.PaymentMethod{}).
		Where("payment_method_id = ? AND payment_method_is_active = TRUE", pmID).
		Count(&pmCount).Error; err != nil {
		return nil, nil, nil, err
	}
	if pmCount == 0 {
		return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Metode pembayaran tidak ditemukan atau nonaktif")
	}

	if pickupMethod == string(deliveryModel.PickupAmbil) {
		return nil, nil, &pmID, nil
	}

	// pesanan kirim wajib punya alamat dan kurir
	if addressID == nil || courierID == nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Alamat dan kurir wajib diisi untuk pesanan kirim")
	}
	addrID, err := uuid.Parse(*addressID)
	if err != nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Alamat tidak valid")
	}
	courID, err := uuid.Parse(*courierID)
	if err != nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Kurir tidak valid")
	}

	var addrCount int64
	if err := tx.Model(&addressModel.ShippingAddress{}).
		Where("shipping_address_id = ? AND shipping_address_user_id = ?", addrID, userID).
		Count(&addrCount).Error; err != nil {
		return nil, nil, nil, err
	}
	if addrCount == 0 {
		return nil, nil, nil, fiber.NewError(fiber.StatusNotFound, "Alamat pengiriman tidak ditemukan")
	}

	var courCount int64
	if err := tx.Model(&referenceModel.Courier{}).
		Where("courier_id = ? AND courier_is_active = TRUE", courID).
		Count(&courCount).Error; err != nil {
		return nil, nil, nil, err
	}
	if courCount == 0 {
		return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, "Kurir tidak ditemukan atau nonaktif")
	}

	return &addrID, &courID, &pmID, nil
}

// POST /api/u/checkout
// Konversi keranjang menjadi pesanan product dalam satu transaksi.
func (ctrl *OrderController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req orderDTO.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	cartIDs := make([]uuid.UUID, 0, len(req.CartIDs))
	for _, raw := range req.CartIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID keranjang tidak valid")
		}
		cartIDs = append(cartIDs, id)
	}

	var order orderModel.Order
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		addrID, courID, pmID, err := ctrl.validateCheckoutRefs(tx, userID, req.PickupMethod, req.ShippingAddressID, req.CourierID, req.PaymentMethodID)
		if err != nil {
			return err
		}

		var carts []cartModel.Cart
		if err := tx.Preload("Product").
			Where("cart_id IN ? AND cart_user_id = ?", cartIDs, userID).
			Find(&carts).Error; err != nil {
			return err
		}
		if len(carts) != len(cartIDs) {
			return fiber.NewError(fiber.StatusBadRequest, "Sebagian item keranjang tidak ditemukan atau bukan milikmu")
		}

		lines := make([]orderService.CheckoutLine, 0, len(carts))
		for _, cart := range carts {
			if cart.Product == nil || !cart.Product.Orderable() {
				return fiber.NewError(fiber.StatusBadRequest, "Ada produk yang sudah tidak tersedia, perbarui keranjangmu")
			}
			lines = append(lines, orderService.CheckoutLine{
				Price:    cart.Product.ProductPrice,
				Quantity: cart.CartQuantity,
			})
		}

		invoice := helper.GenerateInvoiceNumber(time.Now())

		order = orderModel.Order{
			OrderUserID:            userID,
			OrderShippingAddressID: addrID,
			OrderCourierID:         courID,
			OrderPaymentMethodID:   pmID,
			OrderType:              orderModel.TypeProduct,
			OrderInvoiceNumber:     invoice,
			OrderTotalPrice:        orderService.ComputeTotal(lines, 0),
			OrderStatus:            orderModel.StatusMenungguVerifikasi,
			OrderPaymentStatus:     orderModel.PaymentBelumBayar,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, cart := range carts {
			if err := orderService.DeductForOrder(tx, cart.CartProductID, userID, cart.CartQuantity, invoice); err != nil {
				if errors.Is(err, stockService.ErrInsufficientStock) {
					return fiber.NewError(fiber.StatusBadRequest, "Stok produk tidak mencukupi")
				}
				return err
			}
			item := orderModel.OrderItem{
				OrderItemOrderID:   order.OrderID,
				OrderItemProductID: cart.CartProductID,
				OrderItemQuantity:  cart.CartQuantity,
				OrderItemPrice:     cart.Product.ProductPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		delivery := deliveryModel.OrderDelivery{
			OrderDeliveryOrderID:      order.OrderID,
			OrderDeliveryPickupMethod: deliveryModel.PickupMethod(req.PickupMethod),
		}
		if err := tx.Create(&delivery).Error; err != nil {
			return err
		}

		return tx.Where("cart_id IN ? AND cart_user_id = ?", cartIDs, userID).
			Delete(&cartModel.Cart{}).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Checkout gagal")
	}

	return helper.JsonCreated(c, "Pesanan dibuat", orderDTO.ToOrderSummaryResponse(order))
}

// POST /api/u/checkout/custom-pc
func (ctrl *OrderController) CheckoutCustomPC(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req orderDTO.CustomPCCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var order orderModel.Order
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		addrID, courID, pmID, err := ctrl.validateCheckoutRefs(tx, userID, req.PickupMethod, req.ShippingAddressID, req.CourierID, req.PaymentMethodID)
		if err != nil {
			return err
		}

		buildFee := int64(0)
		if req.BuildByStore {
			buildFee = orderService.DefaultBuildFee
		}

		type componentLine struct {
			productID uuid.UUID
			quantity  int
			price     int64
		}
		componentLines := make([]componentLine, 0, len(req.Components))
		lines := make([]orderService.CheckoutLine, 0, len(req.Components))
		for _, comp := range req.Components {
			productID, err := uuid.Parse(comp.ProductID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "ID komponen tidak valid")
			}
			product, err := loadOrderableProduct(tx, productID)
			if err != nil {
				return err
			}
			componentLines = append(componentLines, componentLine{
				productID: productID,
				quantity:  comp.Quantity,
				price:     product.ProductPrice,
			})
			lines = append(lines, orderService.CheckoutLine{Price: product.ProductPrice, Quantity: comp.Quantity})
		}

		invoice := helper.GenerateInvoiceNumber(time.Now())

		order = orderModel.Order{
			OrderUserID:            userID,
			OrderShippingAddressID: addrID,
			OrderCourierID:         courID,
			OrderPaymentMethodID:   pmID,
			OrderType:              orderModel.TypeCustomPC,
			OrderInvoiceNumber:     invoice,
			OrderTotalPrice:        orderService.ComputeTotal(lines, buildFee),
			OrderStatus:            orderModel.StatusMenungguVerifikasi,
			OrderPaymentStatus:     orderModel.PaymentBelumBayar,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		pcOrder := orderModel.CustomPCOrder{
			CustomPCOrderOrderID:      order.OrderID,
			CustomPCOrderBuildByStore: req.BuildByStore,
			CustomPCOrderBuildFee:     buildFee,
		}
		if err := tx.Create(&pcOrder).Error; err != nil {
			return err
		}

		for _, line := range componentLines {
			if err := orderService.DeductForOrder(tx, line.productID, userID, line.quantity, invoice); err != nil {
				if errors.Is(err, stockService.ErrInsufficientStock) {
					return fiber.NewError(fiber.StatusBadRequest, "Stok komponen tidak mencukupi")
				}
				return err
			}
			component := orderModel.CustomPCComponent{
				CustomPCComponentCustomPCOrderID: pcOrder.CustomPCOrderID,
				CustomPCComponentProductID:       line.productID,
				CustomPCComponentQuantity:        line.quantity,
				CustomPCComponentPrice:           line.price,
			}
			if err := tx.Create(&component).Error; err != nil {
				return err
			}
		}

		delivery := deliveryModel.OrderDelivery{
			OrderDeliveryOrderID:      order.OrderID,
			OrderDeliveryPickupMethod: deliveryModel.PickupMethod(req.PickupMethod),
		}
		return tx.Create(&delivery).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Checkout rakitan gagal")
	}

	return helper.JsonCreated(c, "Pesanan rakitan dibuat", orderDTO.ToOrderSummaryResponse(order))
}

// GET /api/u/orders
func (ctrl *OrderController) ListMyOrders(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	paging := helper.ResolvePaging(c, 10, 50)
	query := ctrl.DB.Model(&orderModel.Order{}).Where("order_user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("order_status = ?", status)
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

// GET /api/u/orders/:id — agregat lengkap beserta item/komponen dan catatan
func (ctrl *OrderController) GetMyOrder(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	var order orderModel.Order
	if err := ctrl.DB.
		Preload("Items.Product").
		Preload("CustomPCOrder.Components.Product").
		Preload("Notes").
		First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesanan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesanan")
	}
	return helper.JsonOK(c, "ok", order)
}

// PATCH /api/u/orders/:id/cancel
// Hanya boleh selama pesanan belum diverifikasi admin.
func (ctrl *OrderController) CancelMyOrder(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var order orderModel.Order
		if err := tx.First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pesanan tidak ditemukan")
			}
			return err
		}
		if !orderService.CanCustomerCancel(order.OrderStatus) {
			return fiber.NewError(fiber.StatusConflict, "Pesanan sudah diproses dan tidak bisa dibatalkan")
		}

		// update bersyarat: dua pembatalan beruntun hanya satu yang menang
		res := tx.Model(&orderModel.Order{}).
			Where("order_id = ? AND order_status = ?", orderID, orderModel.StatusMenungguVerifikasi).
			Update("order_status", orderModel.StatusDibatalkan)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah, muat ulang halaman")
		}

		if err := orderService.RestockForOrder(tx, userID, order.OrderInvoiceNumber); err != nil {
			return err
		}
		return notificationService.NotifyOrderStatus(tx, userID, orderID, order.OrderInvoiceNumber, string(orderModel.StatusDibatalkan))
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan pesanan")
	}

	return helper.JsonUpdated(c, "Pesanan dibatalkan", fiber.Map{"order_id": orderID, "order_status": orderModel.StatusDibatalkan})
}

// PATCH /api/u/orders/:id/confirm-receipt
// Pelanggan menandai pesanan diterima, hanya dari status dikirim.
func (ctrl *OrderController) ConfirmReceipt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pesanan tidak valid")
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var order orderModel.Order
		if err := tx.First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
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
			return fiber.NewError(fiber.StatusConflict, "Status pesanan sudah berubah, muat ulang halaman")
		}
		return notificationService.NotifyOrderStatus(tx, userID, orderID, order.OrderInvoiceNumber, string(orderModel.StatusSelesai))
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyelesaikan pesanan")
	}

	return helper.JsonUpdated(c, "Pesanan selesai", fiber.Map{"order_id": orderID, "order_status": orderModel.StatusSelesai})
}
