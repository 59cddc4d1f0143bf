package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShippingAddress struct {
	ShippingAddressID            uuid.UUID `gorm:"column:shipping_address_id;type:uuid;default:gen_random_uuid();primaryKey" json:"shipping_address_id"`
	ShippingAddressUserID        uuid.UUID `gorm:"column:shipping_address_user_id;type:uuid;not null;index" json:"shipping_address_user_id"`
	ShippingAddressLabel         string    `gorm:"column:shipping_address_label;type:varchar(50);not null" json:"shipping_address_label"`
	ShippingAddressRecipientName string    `gorm:"column:shipping_address_recipient_name;type:varchar(100);not null" json:"shipping_address_recipient_name"`
	ShippingAddressPhone         string    `gorm:"column:shipping_address_phone;type:varchar(20);not null" json:"shipping_address_phone"`
	ShippingAddressProvinceID    uuid.UUID `gorm:"column:shipping_address_province_id;type:uuid;not null" json:"shipping_address_province_id"`
	ShippingAddressCityID        uuid.UUID `gorm:"column:shipping_address_city_id;type:uuid;not null" json:"shipping_address_city_id"`
	ShippingAddressDetail        string    `gorm:"column:shipping_address_detail;type:text;not null" json:"shipping_address_detail"`
	ShippingAddressPostalCode    *string   `gorm:"column:shipping_address_postal_code;type:varchar(10)" json:"shipping_address_postal_code,omitempty"`
	ShippingAddressIsPrimary     bool      `gorm:"column:shipping_address_is_primary;not null;default:false" json:"shipping_address_is_primary"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	Province *Province `gorm:"foreignKey:ShippingAddressProvinceID;references:ProvinceID;constraint:OnDelete:RESTRICT" json:"province,omitempty"`
	City     *City     `gorm:"foreignKey:ShippingAddressCityID;references:CityID;constraint:OnDelete:RESTRICT" json:"city,omitempty"`
}

func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}
