package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// StockStatus: status stok turunan produk.
// ready_stock kalau stok > 0; pre_order hanya lewat aksi admin eksplisit dan
// tidak pernah di-downgrade otomatis; selain itu out_of_stock.
type StockStatus string

const (
	StockReady    StockStatus = "ready_stock"
	StockPreOrder StockStatus = "pre_order"
	StockEmpty    StockStatus = "out_of_stock"
)

func (s StockStatus) Valid() bool {
	switch s {
	case StockReady, StockPreOrder, StockEmpty:
		return true
	}
	return false
}

type Product struct {
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey" json:"product_id"`

	ProductCategoryID    uuid.UUID  `gorm:"column:product_category_id;type:uuid;not null;index" json:"product_category_id"`
	ProductSubCategoryID *uuid.UUID `gorm:"column:product_sub_category_id;type:uuid;index" json:"product_sub_category_id,omitempty"`
	ProductBrandID       uuid.UUID  `gorm:"column:product_brand_id;type:uuid;not null;index" json:"product_brand_id"`

	ProductName        string         `gorm:"column:product_name;type:varchar(200);not null" json:"product_name"`
	ProductSlug        string         `gorm:"column:product_slug;type:varchar(220);not null;unique" json:"product_slug"`
	ProductDescription *string        `gorm:"column:product_description;type:text" json:"product_description,omitempty"`
	ProductHighlights  pq.StringArray `gorm:"column:product_highlights;type:text[]" json:"product_highlights,omitempty"`
	ProductImage       *string        `gorm:"column:product_image;type:text" json:"product_image,omitempty"`

	ProductPrice  int64 `gorm:"column:product_price;not null;check:product_price >= 0" json:"product_price"`
	ProductWeight int   `gorm:"column:product_weight;not null;default:0" json:"product_weight"` // gram, utk ongkir

	// product_stock hanya berubah lewat stock ledger (stock_entries)
	ProductStock       int         `gorm:"column:product_stock;not null;default:0;check:product_stock >= 0" json:"product_stock"`
	ProductStatusStock StockStatus `gorm:"column:product_status_stock;type:varchar(20);not null;default:'out_of_stock'" json:"product_status_stock"`

	ProductIsActive bool `gorm:"column:product_is_active;not null;default:true" json:"product_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`

	Category    *Category    `gorm:"foreignKey:ProductCategoryID;references:CategoryID" json:"category,omitempty"`
	SubCategory *SubCategory `gorm:"foreignKey:ProductSubCategoryID;references:SubCategoryID" json:"sub_category,omitempty"`
	Brand       *Brand       `gorm:"foreignKey:ProductBrandID;references:BrandID" json:"brand,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// Orderable: produk bisa masuk keranjang/checkout.
func (p Product) Orderable() bool {
	return p.ProductIsActive && (p.ProductStock > 0 || p.ProductStatusStock == StockPreOrder)
}
