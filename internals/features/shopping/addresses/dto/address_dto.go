package dto

type CreateAddressRequest struct {
	Label         string  `json:"label" validate:"required,min=2,max=50"`
	RecipientName string  `json:"recipient_name" validate:"required,min=2,max=100"`
	Phone         string  `json:"phone" validate:"required,min=8,max=20"`
	ProvinceID    string  `json:"province_id" validate:"required,uuid"`
	CityID        string  `json:"city_id" validate:"required,uuid"`
	Detail        string  `json:"detail" validate:"required,min=5"`
	PostalCode    *string `json:"postal_code" validate:"omitempty,max=10"`
	IsPrimary     bool    `json:"is_primary"`
}

type UpdateAddressRequest struct {
	Label         *string `json:"label" validate:"omitempty,min=2,max=50"`
	RecipientName *string `json:"recipient_name" validate:"omitempty,min=2,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,min=8,max=20"`
	Detail        *string `json:"detail" validate:"omitempty,min=5"`
	PostalCode    *string `json:"postal_code" validate:"omitempty,max=10"`
	IsPrimary     *bool   `json:"is_primary"`
}
