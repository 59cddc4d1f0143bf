package dto

type AddWishlistRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}
