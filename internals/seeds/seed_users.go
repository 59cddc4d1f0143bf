package seeds

import (
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tokorakit_backend/internals/constants"
	userModel "tokorakit_backend/internals/features/users/user/model"
)

// SeedSuperadmin membuat akun superadmin pertama kalau belum ada.
// Email dan password bisa dioverride lewat env.
func SeedSuperadmin(db *gorm.DB) error {
	email := os.Getenv("SEED_SUPERADMIN_EMAIL")
	if email == "" {
		email = "superadmin@tokorakit.id"
	}
	password := os.Getenv("SEED_SUPERADMIN_PASSWORD")
	if password == "" {
		password = "SuperAdmin123!"
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := userModel.UserModel{
		UserName: "superadmin",
		Email:    email,
		Password: string(hashed),
		Role:     constants.RoleSuperadmin,
		IsActive: true,
	}
	return db.Create(&user).Error
}
