package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "tokorakit_backend/internals/features/users/user/controller"
)

// UserRoutes utk user login (profil sendiri)
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/me", ctrl.Me)
	users.Patch("/me", ctrl.UpdateMe)
}

// UserAdminRoutes utk admin/superadmin
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", ctrl.ListUsers)
	users.Patch("/:id/toggle-active", ctrl.ToggleActive)
}
