package dto

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}
