package model

import (
	"time"

	"github.com/google/uuid"
)

// MovementType: arah pergerakan stok pada ledger
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// StockEntry: catatan pergerakan stok per produk (append-only)
type StockEntry struct {
	StockEntryID        uuid.UUID    `gorm:"column:stock_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"stock_entry_id"`
	StockEntryProductID uuid.UUID    `gorm:"column:stock_entry_product_id;type:uuid;not null;index" json:"stock_entry_product_id"`
	StockEntryUserID    uuid.UUID    `gorm:"column:stock_entry_user_id;type:uuid;not null" json:"stock_entry_user_id"`
	StockEntryType      MovementType `gorm:"column:stock_entry_type;type:varchar(10);not null" json:"stock_entry_type"`
	StockEntryQuantity  int          `gorm:"column:stock_entry_quantity;not null;check:stock_entry_quantity > 0" json:"stock_entry_quantity"`
	StockEntryNote      *string      `gorm:"column:stock_entry_note;type:text" json:"stock_entry_note,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (StockEntry) TableName() string {
	return "stock_entries"
}
