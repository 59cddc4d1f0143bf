package dto

type CreateFeedbackRequest struct {
	OrderID string  `json:"order_id" validate:"required,uuid"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Body    *string `json:"body" validate:"omitempty,max=1000"`
}
