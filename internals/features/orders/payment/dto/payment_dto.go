package dto

type SubmitConfirmationRequest struct {
	BankName      string `json:"bank_name" form:"bank_name" validate:"required,min=2,max=100"`
	AccountNumber string `json:"account_number" form:"account_number" validate:"required,min=5,max=50"`
	TransferTime  string `json:"transfer_time" form:"transfer_time" validate:"required"`
}

type VerifyConfirmationRequest struct {
	IsVerified *bool   `json:"is_verified" validate:"required"`
	Note       *string `json:"note" validate:"omitempty,min=3"`
}
