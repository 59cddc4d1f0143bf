package dto

import (
	"time"

	"github.com/google/uuid"

	stockModel "tokorakit_backend/internals/features/catalog/stock/model"
)

type RecordMovementRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Type      string  `json:"type" validate:"required,oneof=in out"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Note      *string `json:"note" validate:"omitempty,max=500"`
}

type StockEntryResponse struct {
	StockEntryID uuid.UUID               `json:"stock_entry_id"`
	ProductID    uuid.UUID               `json:"product_id"`
	UserID       uuid.UUID               `json:"user_id"`
	Type         stockModel.MovementType `json:"type"`
	Quantity     int                     `json:"quantity"`
	Note         *string                 `json:"note,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}

func ToStockEntryResponse(m stockModel.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		StockEntryID: m.StockEntryID,
		ProductID:    m.StockEntryProductID,
		UserID:       m.StockEntryUserID,
		Type:         m.StockEntryType,
		Quantity:     m.StockEntryQuantity,
		Note:         m.StockEntryNote,
		CreatedAt:    m.CreatedAt,
	}
}
