package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "tokorakit_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ctrl.DB, c)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctrl.DB, c)
}

func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctrl.DB, c)
}

func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ctrl.DB, c)
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctrl.DB, c)
}

func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ctrl.DB, c)
}
