package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationModel "tokorakit_backend/internals/features/others/notifications/model"
	helper "tokorakit_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/u/notifications
func (ctrl *NotificationController) ListMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&notificationModel.Notification{}).
		Where("notification_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var items []notificationModel.Notification
	if err := ctrl.DB.Where("notification_user_id = ?", userID).
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", items, &pagination)
}

// PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}

	res := ctrl.DB.Model(&notificationModel.Notification{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai dibaca", fiber.Map{"notification_id": notifID})
}

// PATCH /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	res := ctrl.DB.Model(&notificationModel.Notification{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	return helper.JsonUpdated(c, "Semua notifikasi ditandai dibaca", fiber.Map{"updated": res.RowsAffected})
}
