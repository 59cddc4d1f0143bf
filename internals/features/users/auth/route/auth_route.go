package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "tokorakit_backend/internals/features/users/auth/controller"
	"tokorakit_backend/internals/middlewares"
	authMiddleware "tokorakit_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint publik (register/login/refresh) + yang butuh login (logout, ganti password)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	api.Post("/refresh-token", ctrl.RefreshToken)

	secured := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	secured.Post("/logout", ctrl.Logout)
	secured.Post("/change-password", ctrl.ChangePassword)
}
