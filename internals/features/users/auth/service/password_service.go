package service

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "tokorakit_backend/internals/features/users/auth/dto"
	authRepo "tokorakit_backend/internals/features/users/auth/repository"
	helper "tokorakit_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
// POST /api/u/auth/change-password
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	// Cek password lama
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := authRepo.UpdateUserPassword(db, userID, string(newHash)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
