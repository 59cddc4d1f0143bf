package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokorakit_backend/internals/constants"
	userDTO "tokorakit_backend/internals/features/users/user/dto"
	userModel "tokorakit_backend/internals/features/users/user/model"
	helper "tokorakit_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// GET /api/u/users/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", userDTO.ToUserResponse(user))
}

// PATCH /api/u/users/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]any{}
	if req.UserName != nil {
		updates["user_name"] = strings.TrimSpace(*req.UserName)
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonUpdated(c, "Profil diperbarui", userDTO.ToUserResponse(user))
}

// GET /api/a/users (admin) — pagination + search nama/email
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&userModel.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(user_name) LIKE ? OR lower(email) LIKE ?", like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	out := make([]userDTO.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userDTO.ToUserResponse(u))
	}
	p := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", out, &p)
}

// PATCH /api/a/users/:id/toggle-active (superadmin)
func (ctrl *UserController) ToggleActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if user.Role == constants.RoleSuperadmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Superadmin tidak bisa dinonaktifkan")
	}

	if err := ctrl.DB.Model(&user).Update("is_active", !user.IsActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status user")
	}
	user.IsActive = !user.IsActive
	return helper.JsonUpdated(c, "Status user diubah", userDTO.ToUserResponse(user))
}
