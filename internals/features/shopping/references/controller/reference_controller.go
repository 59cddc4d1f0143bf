package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	referenceDTO "tokorakit_backend/internals/features/shopping/references/dto"
	referenceModel "tokorakit_backend/internals/features/shopping/references/model"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type ReferenceController struct {
	DB *gorm.DB
}

func NewReferenceController(db *gorm.DB) *ReferenceController {
	return &ReferenceController{DB: db}
}

// GET /api/public/couriers
func (ctrl *ReferenceController) ListCouriers(c *fiber.Ctx) error {
	var couriers []referenceModel.Courier
	if err := ctrl.DB.Where("courier_is_active = TRUE").
		Order("courier_name ASC").Find(&couriers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kurir")
	}
	return helper.JsonOK(c, "ok", couriers)
}

// GET /api/public/payment-methods
func (ctrl *ReferenceController) ListPaymentMethods(c *fiber.Ctx) error {
	var methods []referenceModel.PaymentMethod
	if err := ctrl.DB.Where("payment_method_is_active = TRUE").
		Order("payment_method_name ASC").Find(&methods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil metode pembayaran")
	}
	return helper.JsonOK(c, "ok", methods)
}

// POST /api/a/couriers
func (ctrl *ReferenceController) CreateCourier(c *fiber.Ctx) error {
	var req referenceDTO.CreateCourierRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := referenceModel.Courier{CourierName: req.Name, CourierIsActive: true}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kurir sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kurir")
	}
	return helper.JsonCreated(c, "Kurir dibuat", m)
}

// PATCH /api/a/couriers/:id/toggle-active
func (ctrl *ReferenceController) ToggleCourier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kurir tidak valid")
	}
	var req referenceDTO.ToggleActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	res := ctrl.DB.Model(&referenceModel.Courier{}).
		Where("courier_id = ?", id).
		Update("courier_is_active", *req.IsActive)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status kurir")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kurir tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Status kurir diperbarui", fiber.Map{"courier_id": id, "is_active": *req.IsActive})
}

// POST /api/a/payment-methods
func (ctrl *ReferenceController) CreatePaymentMethod(c *fiber.Ctx) error {
	var req referenceDTO.CreatePaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := referenceModel.PaymentMethod{
		PaymentMethodName:          strings.TrimSpace(req.Name),
		PaymentMethodAccountName:   strings.TrimSpace(req.AccountName),
		PaymentMethodAccountNumber: strings.TrimSpace(req.AccountNumber),
		PaymentMethodIsActive:      true,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat metode pembayaran")
	}
	return helper.JsonCreated(c, "Metode pembayaran dibuat", m)
}

// PATCH /api/a/payment-methods/:id/toggle-active
func (ctrl *ReferenceController) TogglePaymentMethod(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID metode pembayaran tidak valid")
	}
	var req referenceDTO.ToggleActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	res := ctrl.DB.Model(&referenceModel.PaymentMethod{}).
		Where("payment_method_id = ?", id).
		Update("payment_method_is_active", *req.IsActive)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status metode pembayaran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Metode pembayaran tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Status metode pembayaran diperbarui", fiber.Map{"payment_method_id": id, "is_active": *req.IsActive})
}
