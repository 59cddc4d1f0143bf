package dto

import (
	"time"

	"github.com/google/uuid"

	orderModel "tokorakit_backend/internals/features/orders/order/model"
)

type CheckoutRequest struct {
	CartIDs           []string `json:"cart_ids" validate:"required,min=1,dive,uuid"`
	PickupMethod      string   `json:"pickup_method" validate:"required,oneof=ambil kirim"`
	ShippingAddressID *string  `json:"shipping_address_id" validate:"omitempty,uuid"`
	CourierID         *string  `json:"courier_id" validate:"omitempty,uuid"`
	PaymentMethodID   string   `json:"payment_method_id" validate:"required,uuid"`
}

type CustomPCComponentRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CustomPCCheckoutRequest struct {
	Components        []CustomPCComponentRequest `json:"components" validate:"required,min=1,dive"`
	BuildByStore      bool                       `json:"build_by_store"`
	PickupMethod      string                     `json:"pickup_method" validate:"required,oneof=ambil kirim"`
	ShippingAddressID *string                    `json:"shipping_address_id" validate:"omitempty,uuid"`
	CourierID         *string                    `json:"courier_id" validate:"omitempty,uuid"`
	PaymentMethodID   string                     `json:"payment_method_id" validate:"required,uuid"`
}

type ApproveOrderRequest struct {
	ShippingCost *int64 `json:"shipping_cost" validate:"omitempty,gte=0"`
}

type RejectOrderRequest struct {
	Note string `json:"note" validate:"required,min=3"`
}

type ApproveAllResultItem struct {
	OrderID       uuid.UUID `json:"order_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
}

type OrderSummaryResponse struct {
	OrderID       uuid.UUID                `json:"order_id"`
	InvoiceNumber string                   `json:"invoice_number"`
	OrderType     orderModel.OrderType     `json:"order_type"`
	TotalPrice    int64                    `json:"total_price"`
	OrderStatus   orderModel.OrderStatus   `json:"order_status"`
	PaymentStatus orderModel.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time                `json:"created_at"`
}

func ToOrderSummaryResponse(m orderModel.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		OrderID:       m.OrderID,
		InvoiceNumber: m.OrderInvoiceNumber,
		OrderType:     m.OrderType,
		TotalPrice:    m.OrderTotalPrice,
		OrderStatus:   m.OrderStatus,
		PaymentStatus: m.OrderPaymentStatus,
		CreatedAt:     m.CreatedAt,
	}
}
