package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tokorakit_backend/internals/configs"
	"tokorakit_backend/internals/constants"
	authDTO "tokorakit_backend/internals/features/users/auth/dto"
	authModel "tokorakit_backend/internals/features/users/auth/model"
	authRepo "tokorakit_backend/internals/features/users/auth/repository"
	userModel "tokorakit_backend/internals/features/users/user/model"
	helpers "tokorakit_backend/internals/helpers"
)

/* ==========================
   Const & helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET belum diset")
	}
	return configs.JWTRefreshSecret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

/* ==========================
   REGISTER
========================== */
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.UserName = strings.TrimSpace(input.UserName)
	input.Email = strings.TrimSpace(input.Email)

	if err := validate.Struct(input); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Email:    input.Email,
		Password: string(hashed),
		Phone:    strptr(strings.TrimSpace(input.Phone)),
		Role:     constants.RoleCustomer,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helpers.JsonCreated(c, "Registrasi berhasil. Silakan login.", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN (email + password)
========================== */
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := validate.Struct(input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email atau password tidak lengkap")
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */
// POST /api/auth/login-google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// User belum ada -> buat baru
		newUser := userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			Role:     constants.RoleCustomer,
			IsActive: true,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = &newUser
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   TOKEN ISSUING
========================== */

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	ua, ip := c.Get("User-Agent"), c.IP()
	rt := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}
	if err := db.Create(&rt).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user": authDTO.LoginUser{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
			Role:     user.Role,
		},
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   LOGOUT
========================== */
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Ambil raw access token (Authorization / cookie)
	accessToken := strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer "))
	if accessToken == "" {
		accessToken = strings.TrimSpace(c.Cookies("access_token"))
	}

	// Blacklist access token (idempotent)
	if accessToken != "" {
		bl := authModel.TokenBlacklist{
			Token:     accessToken,
			ExpiredAt: nowUTC().Add(resolveBlacklistTTL(accessToken)),
		}
		if err := db.Create(&bl).Error; err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	}

	// Hapus refresh token dari DB jika ada di cookie
	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = db.Where("token_hash = ?", computeRefreshHash(rt, secret)).
				Delete(&authModel.RefreshToken{}).Error
		}
	}

	// Hapus cookies
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helpers.JsonOK(c, "Logout successful", nil)
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	jwtSecret := configs.JWTSecret
	if jwtSecret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}

func generateDummyPassword() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
