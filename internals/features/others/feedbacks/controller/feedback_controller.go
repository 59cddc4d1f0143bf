package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	orderModel "tokorakit_backend/internals/features/orders/order/model"
	feedbackDTO "tokorakit_backend/internals/features/others/feedbacks/dto"
	feedbackModel "tokorakit_backend/internals/features/others/feedbacks/model"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// POST /api/u/feedbacks
// Ulasan hanya untuk pesanan milik sendiri yang sudah selesai.
func (ctrl *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req feedbackDTO.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	orderID, _ := uuid.Parse(req.OrderID)

	var order orderModel.Order
	if err := ctrl.DB.First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesanan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek pesanan")
	}
	if order.OrderStatus != orderModel.StatusSelesai {
		return helper.JsonError(c, fiber.StatusConflict, "Ulasan hanya untuk pesanan yang sudah selesai")
	}

	feedback := feedbackModel.Feedback{
		FeedbackOrderID: orderID,
		FeedbackUserID:  userID,
		FeedbackRating:  req.Rating,
		FeedbackBody:    req.Body,
	}
	if err := ctrl.DB.Create(&feedback).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusConflict, "Pesanan ini sudah pernah diulas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan ulasan")
	}
	return helper.JsonCreated(c, "Ulasan tersimpan", feedback)
}

// GET /api/u/feedbacks
func (ctrl *FeedbackController) ListMyFeedbacks(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var items []feedbackModel.Feedback
	if err := ctrl.DB.Where("feedback_user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ulasan")
	}
	return helper.JsonOK(c, "ok", items)
}

// GET /api/a/feedbacks
func (ctrl *FeedbackController) ListAllFeedbacks(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&feedbackModel.Feedback{})
	if rating := c.QueryInt("rating"); rating > 0 {
		query = query.Where("feedback_rating = ?", rating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ulasan")
	}

	var items []feedbackModel.Feedback
	if err := query.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ulasan")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", items, &pagination)
}
