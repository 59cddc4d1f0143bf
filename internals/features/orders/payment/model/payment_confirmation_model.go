package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentConfirmation: bukti transfer manual, satu per pesanan.
// is_verified nil berarti belum ditinjau admin; sekali diisi tidak
// pernah berubah lagi.
type PaymentConfirmation struct {
	PaymentConfirmationID            uuid.UUID  `gorm:"column:payment_confirmation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_confirmation_id"`
	PaymentConfirmationOrderID       uuid.UUID  `gorm:"column:payment_confirmation_order_id;type:uuid;not null;uniqueIndex" json:"payment_confirmation_order_id"`
	PaymentConfirmationUserID        uuid.UUID  `gorm:"column:payment_confirmation_user_id;type:uuid;not null" json:"payment_confirmation_user_id"`
	PaymentConfirmationProofImage    string     `gorm:"column:payment_confirmation_proof_image;type:text;not null" json:"payment_confirmation_proof_image"`
	PaymentConfirmationBankName      string     `gorm:"column:payment_confirmation_bank_name;type:varchar(100);not null" json:"payment_confirmation_bank_name"`
	PaymentConfirmationAccountNumber string     `gorm:"column:payment_confirmation_account_number;type:varchar(50);not null" json:"payment_confirmation_account_number"`
	PaymentConfirmationTransferTime  time.Time  `gorm:"column:payment_confirmation_transfer_time;not null" json:"payment_confirmation_transfer_time"`
	PaymentConfirmationIsVerified    *bool      `gorm:"column:payment_confirmation_is_verified" json:"payment_confirmation_is_verified"`
	PaymentConfirmationVerifiedAt    *time.Time `gorm:"column:payment_confirmation_verified_at" json:"payment_confirmation_verified_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentConfirmation) TableName() string {
	return "payment_confirmations"
}
