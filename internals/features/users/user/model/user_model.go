package model

import (
	"time"

	"github.com/google/uuid"

	"tokorakit_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Phone    *string   `gorm:"size:20" json:"phone,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleCustomer
	}
}
