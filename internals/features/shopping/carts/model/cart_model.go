package model

import (
	"time"

	"github.com/google/uuid"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
)

// Cart: satu baris per (user, produk); tambah produk yang sama menaikkan kuantitas
type Cart struct {
	CartID        uuid.UUID `gorm:"column:cart_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cart_id"`
	CartUserID    uuid.UUID `gorm:"column:cart_user_id;type:uuid;not null;index;uniqueIndex:uq_cart_user_product" json:"cart_user_id"`
	CartProductID uuid.UUID `gorm:"column:cart_product_id;type:uuid;not null;uniqueIndex:uq_cart_user_product" json:"cart_product_id"`
	CartQuantity  int       `gorm:"column:cart_quantity;not null;default:1;check:cart_quantity > 0" json:"cart_quantity"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Product *productModel.Product `gorm:"foreignKey:CartProductID;references:ProductID" json:"product,omitempty"`
}

func (Cart) TableName() string {
	return "carts"
}
