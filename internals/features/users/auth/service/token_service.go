// internals/features/users/auth/service/token_service.go
package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "tokorakit_backend/internals/features/users/auth/model"
	authRepo "tokorakit_backend/internals/features/users/auth/repository"
	helpers "tokorakit_backend/internals/helpers"
)

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB
	h := computeRefreshHash(refreshCookie, refreshSecret)
	var exists bool
	if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token_hash = ? AND revoked_at IS NULL)`, h).
		Scan(&exists).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	// Ambil user + guard aktif
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama
	if err := db.Where("token_hash = ?", h).Delete(&authModel.RefreshToken{}).Error; err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	// issue access & refresh baru
	return issueTokens(c, db, *user)
}
