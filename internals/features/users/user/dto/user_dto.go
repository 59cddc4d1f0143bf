package dto

import (
	"time"

	userModel "tokorakit_backend/internals/features/users/user/model"
)

type UpdateProfileRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(m userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID.String(),
		UserName:  m.UserName,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}
