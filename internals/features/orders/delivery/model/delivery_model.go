package model

import (
	"time"

	"github.com/google/uuid"
)

// PickupMethod: cara pesanan sampai ke pelanggan
type PickupMethod string

const (
	PickupAmbil  PickupMethod = "ambil"
	PickupKirim  PickupMethod = "kirim"
)

func (m PickupMethod) Valid() bool {
	return m == PickupAmbil || m == PickupKirim
}

// OrderDelivery: satu per pesanan, dibuat saat admin menyetujui pesanan
type OrderDelivery struct {
	OrderDeliveryID               uuid.UUID    `gorm:"column:order_delivery_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_delivery_id"`
	OrderDeliveryOrderID          uuid.UUID    `gorm:"column:order_delivery_order_id;type:uuid;not null;uniqueIndex" json:"order_delivery_order_id"`
	OrderDeliveryPickupMethod     PickupMethod `gorm:"column:order_delivery_pickup_method;type:varchar(10);not null" json:"order_delivery_pickup_method"`
	OrderDeliveryShippingCost     int64        `gorm:"column:order_delivery_shipping_cost;not null;default:0" json:"order_delivery_shipping_cost"`
	OrderDeliveryTrackingNumber   *string      `gorm:"column:order_delivery_tracking_number;type:varchar(100)" json:"order_delivery_tracking_number,omitempty"`
	OrderDeliveryProofImage       *string      `gorm:"column:order_delivery_proof_image;type:text" json:"order_delivery_proof_image,omitempty"`
	OrderDeliveryEstimatedArrival *time.Time   `gorm:"column:order_delivery_estimated_arrival" json:"order_delivery_estimated_arrival,omitempty"`
	OrderDeliveryNote             *string      `gorm:"column:order_delivery_note;type:text" json:"order_delivery_note,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderDelivery) TableName() string {
	return "order_deliveries"
}
