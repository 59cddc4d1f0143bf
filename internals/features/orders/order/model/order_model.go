package model

import (
	"time"

	"github.com/google/uuid"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
)

// OrderStatus: tahapan hidup pesanan
type OrderStatus string

const (
	StatusMenungguVerifikasi OrderStatus = "menunggu_verifikasi"
	StatusMenungguPembayaran OrderStatus = "menunggu_pembayaran"
	StatusDiproses           OrderStatus = "diproses"
	StatusDikirim            OrderStatus = "dikirim"
	StatusSelesai            OrderStatus = "selesai"
	StatusDibatalkan         OrderStatus = "dibatalkan"
)

// PaymentStatus: status pembayaran pesanan
type PaymentStatus string

const (
	PaymentBelumBayar PaymentStatus = "belum_bayar"
	PaymentSudahBayar PaymentStatus = "sudah_bayar"
	PaymentGagal      PaymentStatus = "gagal"
)

// OrderType: bentuk pesanan
type OrderType string

const (
	TypeProduct  OrderType = "product"
	TypeCustomPC OrderType = "custom_pc"
)

type Order struct {
	OrderID                uuid.UUID     `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`
	OrderUserID            uuid.UUID     `gorm:"column:order_user_id;type:uuid;not null;index" json:"order_user_id"`
	OrderShippingAddressID *uuid.UUID    `gorm:"column:order_shipping_address_id;type:uuid" json:"order_shipping_address_id,omitempty"`
	OrderCourierID         *uuid.UUID    `gorm:"column:order_courier_id;type:uuid" json:"order_courier_id,omitempty"`
	OrderPaymentMethodID   *uuid.UUID    `gorm:"column:order_payment_method_id;type:uuid" json:"order_payment_method_id,omitempty"`
	OrderType              OrderType     `gorm:"column:order_type;type:varchar(20);not null" json:"order_type"`
	OrderInvoiceNumber     string        `gorm:"column:order_invoice_number;type:varchar(30);not null;unique" json:"order_invoice_number"`
	OrderTotalPrice        int64         `gorm:"column:order_total_price;not null" json:"order_total_price"`
	OrderStatus            OrderStatus   `gorm:"column:order_status;type:varchar(30);not null;default:'menunggu_verifikasi';index" json:"order_status"`
	OrderPaymentStatus     PaymentStatus `gorm:"column:order_payment_status;type:varchar(20);not null;default:'belum_bayar'" json:"order_payment_status"`
	OrderPaidAt            *time.Time    `gorm:"column:order_paid_at" json:"order_paid_at,omitempty"`
	OrderFinishedAt        *time.Time    `gorm:"column:order_finished_at" json:"order_finished_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Items         []OrderItem    `gorm:"foreignKey:OrderItemOrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CustomPCOrder *CustomPCOrder `gorm:"foreignKey:CustomPCOrderOrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"custom_pc_order,omitempty"`
	Notes         []OrderNote    `gorm:"foreignKey:OrderNoteOrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem: baris pesanan tipe product, harga dibekukan saat checkout
type OrderItem struct {
	OrderItemID        uuid.UUID `gorm:"column:order_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_item_id"`
	OrderItemOrderID   uuid.UUID `gorm:"column:order_item_order_id;type:uuid;not null;index" json:"order_item_order_id"`
	OrderItemProductID uuid.UUID `gorm:"column:order_item_product_id;type:uuid;not null" json:"order_item_product_id"`
	OrderItemQuantity  int       `gorm:"column:order_item_quantity;not null;check:order_item_quantity > 0" json:"order_item_quantity"`
	OrderItemPrice     int64     `gorm:"column:order_item_price;not null" json:"order_item_price"`

	Product *productModel.Product `gorm:"foreignKey:OrderItemProductID;references:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// CustomPCOrder: detail rakitan untuk pesanan tipe custom_pc
type CustomPCOrder struct {
	CustomPCOrderID           uuid.UUID `gorm:"column:custom_pc_order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"custom_pc_order_id"`
	CustomPCOrderOrderID      uuid.UUID `gorm:"column:custom_pc_order_order_id;type:uuid;not null;uniqueIndex" json:"custom_pc_order_order_id"`
	CustomPCOrderBuildByStore bool      `gorm:"column:custom_pc_order_build_by_store;not null;default:false" json:"custom_pc_order_build_by_store"`
	CustomPCOrderBuildFee     int64     `gorm:"column:custom_pc_order_build_fee;not null;default:0" json:"custom_pc_order_build_fee"`

	Components []CustomPCComponent `gorm:"foreignKey:CustomPCComponentCustomPCOrderID;references:CustomPCOrderID;constraint:OnDelete:CASCADE" json:"components,omitempty"`
}

func (CustomPCOrder) TableName() string {
	return "custom_pc_orders"
}

type CustomPCComponent struct {
	CustomPCComponentID              uuid.UUID `gorm:"column:custom_pc_component_id;type:uuid;default:gen_random_uuid();primaryKey" json:"custom_pc_component_id"`
	CustomPCComponentCustomPCOrderID uuid.UUID `gorm:"column:custom_pc_component_custom_pc_order_id;type:uuid;not null;index" json:"custom_pc_component_custom_pc_order_id"`
	CustomPCComponentProductID       uuid.UUID `gorm:"column:custom_pc_component_product_id;type:uuid;not null" json:"custom_pc_component_product_id"`
	CustomPCComponentQuantity        int       `gorm:"column:custom_pc_component_quantity;not null;check:custom_pc_component_quantity > 0" json:"custom_pc_component_quantity"`
	CustomPCComponentPrice           int64     `gorm:"column:custom_pc_component_price;not null" json:"custom_pc_component_price"`

	Product *productModel.Product `gorm:"foreignKey:CustomPCComponentProductID;references:ProductID" json:"product,omitempty"`
}

func (CustomPCComponent) TableName() string {
	return "custom_pc_components"
}

// OrderNote: catatan admin/pelanggan pada pesanan (termasuk alasan penolakan)
type OrderNote struct {
	OrderNoteID      uuid.UUID `gorm:"column:order_note_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_note_id"`
	OrderNoteOrderID uuid.UUID `gorm:"column:order_note_order_id;type:uuid;not null;index" json:"order_note_order_id"`
	OrderNoteUserID  uuid.UUID `gorm:"column:order_note_user_id;type:uuid;not null" json:"order_note_user_id"`
	OrderNoteBody    string    `gorm:"column:order_note_body;type:text;not null" json:"order_note_body"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OrderNote) TableName() string {
	return "order_notes"
}
