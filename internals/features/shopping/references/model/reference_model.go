package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Courier struct {
	CourierID       uuid.UUID `gorm:"column:courier_id;type:uuid;default:gen_random_uuid();primaryKey" json:"courier_id"`
	CourierName     string    `gorm:"column:courier_name;type:varchar(100);not null;unique" json:"courier_name"`
	CourierIsActive bool      `gorm:"column:courier_is_active;not null;default:true" json:"courier_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Courier) TableName() string {
	return "couriers"
}

// PaymentMethod: rekening tujuan transfer manual (nama bank + nomor rekening)
type PaymentMethod struct {
	PaymentMethodID            uuid.UUID `gorm:"column:payment_method_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_method_id"`
	PaymentMethodName          string    `gorm:"column:payment_method_name;type:varchar(100);not null" json:"payment_method_name"`
	PaymentMethodAccountName   string    `gorm:"column:payment_method_account_name;type:varchar(100);not null" json:"payment_method_account_name"`
	PaymentMethodAccountNumber string    `gorm:"column:payment_method_account_number;type:varchar(50);not null" json:"payment_method_account_number"`
	PaymentMethodIsActive      bool      `gorm:"column:payment_method_is_active;not null;default:true" json:"payment_method_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
