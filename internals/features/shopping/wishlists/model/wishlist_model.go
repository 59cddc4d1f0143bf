package model

import (
	"time"

	"github.com/google/uuid"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
)

type Wishlist struct {
	WishlistID        uuid.UUID `gorm:"column:wishlist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"wishlist_id"`
	WishlistUserID    uuid.UUID `gorm:"column:wishlist_user_id;type:uuid;not null;index;uniqueIndex:uq_wishlist_user_product" json:"wishlist_user_id"`
	WishlistProductID uuid.UUID `gorm:"column:wishlist_product_id;type:uuid;not null;uniqueIndex:uq_wishlist_user_product" json:"wishlist_product_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Product *productModel.Product `gorm:"foreignKey:WishlistProductID;references:ProductID" json:"product,omitempty"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
