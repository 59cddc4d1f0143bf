package dto

type CreateCourierRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreatePaymentMethodRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	AccountName   string `json:"account_name" validate:"required,min=2,max=100"`
	AccountNumber string `json:"account_number" validate:"required,min=5,max=50"`
}

type ToggleActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
