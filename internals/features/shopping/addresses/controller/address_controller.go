package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	addressDTO "tokorakit_backend/internals/features/shopping/addresses/dto"
	addressModel "tokorakit_backend/internals/features/shopping/addresses/model"
	helper "tokorakit_backend/internals/helpers"
)

var validate = validator.New()

type AddressController struct {
	DB *gorm.DB
}

func NewAddressController(db *gorm.DB) *AddressController {
	return &AddressController{DB: db}
}

// GET /api/public/provinces
func (ctrl *AddressController) ListProvinces(c *fiber.Ctx) error {
	var provinces []addressModel.Province
	if err := ctrl.DB.Order("province_name ASC").Find(&provinces).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil provinsi")
	}
	return helper.JsonOK(c, "ok", provinces)
}

// GET /api/public/provinces/:id/cities
func (ctrl *AddressController) ListCities(c *fiber.Ctx) error {
	provinceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID provinsi tidak valid")
	}
	var cities []addressModel.City
	if err := ctrl.DB.Where("city_province_id = ?", provinceID).
		Order("city_name ASC").Find(&cities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kota")
	}
	return helper.JsonOK(c, "ok", cities)
}

// GET /api/u/addresses
func (ctrl *AddressController) ListMyAddresses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	var addresses []addressModel.ShippingAddress
	if err := ctrl.DB.Preload("Province").Preload("City").
		Where("shipping_address_user_id = ?", userID).
		Order("shipping_address_is_primary DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alamat")
	}
	return helper.JsonOK(c, "ok", addresses)
}

// POST /api/u/addresses
// Alamat utama cuma satu: set is_primary baru menurunkan yang lama dalam transaksi.
func (ctrl *AddressController) CreateAddress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req addressDTO.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	provinceID, _ := uuid.Parse(req.ProvinceID)
	cityID, _ := uuid.Parse(req.CityID)

	var address addressModel.ShippingAddress
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var city addressModel.City
		if err := tx.First(&city, "city_id = ? AND city_province_id = ?", cityID, provinceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Kota tidak ditemukan pada provinsi tersebut")
			}
			return err
		}

		var count int64
		if err := tx.Model(&addressModel.ShippingAddress{}).
			Where("shipping_address_user_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}
		isPrimary := req.IsPrimary || count == 0

		if isPrimary {
			if err := tx.Model(&addressModel.ShippingAddress{}).
				Where("shipping_address_user_id = ? AND shipping_address_is_primary = TRUE", userID).
				Update("shipping_address_is_primary", false).Error; err != nil {
				return err
			}
		}

		address = addressModel.ShippingAddress{
			ShippingAddressUserID:        userID,
			ShippingAddressLabel:         req.Label,
			ShippingAddressRecipientName: req.RecipientName,
			ShippingAddressPhone:         req.Phone,
			ShippingAddressProvinceID:    provinceID,
			ShippingAddressCityID:        cityID,
			ShippingAddressDetail:        req.Detail,
			ShippingAddressPostalCode:    req.PostalCode,
			ShippingAddressIsPrimary:     isPrimary,
		}
		return tx.Create(&address).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan alamat")
	}

	return helper.JsonCreated(c, "Alamat disimpan", address)
}

// PATCH /api/u/addresses/:id
func (ctrl *AddressController) UpdateAddress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	addressID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID alamat tidak valid")
	}

	var req addressDTO.UpdateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var address addressModel.ShippingAddress
		if err := tx.First(&address,
			"shipping_address_id = ? AND shipping_address_user_id = ?", addressID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Alamat tidak ditemukan")
			}
			return err
		}

		updates := map[string]any{}
		if req.Label != nil {
			updates["shipping_address_label"] = *req.Label
		}
		if req.RecipientName != nil {
			updates["shipping_address_recipient_name"] = *req.RecipientName
		}
		if req.Phone != nil {
			updates["shipping_address_phone"] = *req.Phone
		}
		if req.Detail != nil {
			updates["shipping_address_detail"] = *req.Detail
		}
		if req.PostalCode != nil {
			updates["shipping_address_postal_code"] = *req.PostalCode
		}
		if req.IsPrimary != nil && *req.IsPrimary {
			if err := tx.Model(&addressModel.ShippingAddress{}).
				Where("shipping_address_user_id = ? AND shipping_address_is_primary = TRUE", userID).
				Update("shipping_address_is_primary", false).Error; err != nil {
				return err
			}
			updates["shipping_address_is_primary"] = true
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&address).Updates(updates).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah alamat")
	}

	return helper.JsonUpdated(c, "Alamat diperbarui", fiber.Map{"shipping_address_id": addressID})
}

// DELETE /api/u/addresses/:id (soft delete)
func (ctrl *AddressController) DeleteAddress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	addressID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID alamat tidak valid")
	}

	res := ctrl.DB.Where("shipping_address_id = ? AND shipping_address_user_id = ?", addressID, userID).
		Delete(&addressModel.ShippingAddress{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus alamat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Alamat tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Alamat dihapus", fiber.Map{"shipping_address_id": addressID})
}
