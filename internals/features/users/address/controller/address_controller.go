package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/users/address/dto"
	addressModel "tokobuku_backend/internals/features/users/address/model"
	userModel "tokobuku_backend/internals/features/users/user/model"
	helper "tokobuku_backend/internals/helpers"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

type AddressController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAddressController(db *gorm.DB) *AddressController {
	return &AddressController{DB: db, Validate: validator.New()}
}

// resolveUserID: auth_id dari token -> user_id pemilik alamat.
func (ac *AddressController) resolveUserID(c *fiber.Ctx) (uuid.UUID, error) {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var u userModel.UserModel
	if err := ac.DB.Select("user_id").First(&u, "user_auth_id = ?", authID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Hanya akun user yang punya alamat")
	}
	return u.UserID, nil
}

// GET /api/u/addresses
func (ac *AddressController) List(c *fiber.Ctx) error {
	userID, err := ac.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var addresses []addressModel.AddressModel
	if err := ac.DB.Where("address_user_id = ?", userID).
		Order("address_is_default DESC, address_created_at DESC").
		Find(&addresses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", addresses)
}

// POST /api/u/addresses
func (ac *AddressController) Create(c *fiber.Ctx) error {
	userID, err := ac.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(userID)
	if err := ac.DB.Transaction(func(tx *gorm.DB) error {
		// alamat pertama otomatis jadi default
		var count int64
		if err := tx.Model(&addressModel.AddressModel{}).
			Where("address_user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			m.AddressIsDefault = true
		}
		if m.AddressIsDefault {
			if err := tx.Model(&addressModel.AddressModel{}).
				Where("address_user_id = ?", userID).
				Update("address_is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	}); err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Alamat duplikat", "Referensi tidak valid", "Gagal membuat alamat"))
	}
	return helper.JsonCreated(c, "Alamat berhasil dibuat", m)
}

// PUT /api/u/addresses/:id
func (ac *AddressController) Update(c *fiber.Ctx) error {
	userID, err := ac.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "address_id tidak valid")
	}

	var req dto.UpdateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// ownership check: alamat milik user lain -> 404, bukan 403
	var m addressModel.AddressModel
	if err := ac.DB.First(&m, "address_id = ? AND address_user_id = ?", id, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Alamat tidak ditemukan")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", m)
	}

	if err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if isDefault, ok := updates["address_is_default"].(bool); ok && isDefault {
			if err := tx.Model(&addressModel.AddressModel{}).
				Where("address_user_id = ? AND address_id <> ?", userID, id).
				Update("address_is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&m).Updates(updates).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update alamat")
	}
	return helper.JsonUpdated(c, "Alamat berhasil diperbarui", m)
}

// DELETE /api/u/addresses/:id
func (ac *AddressController) Delete(c *fiber.Ctx) error {
	userID, err := ac.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "address_id tidak valid")
	}
	res := ac.DB.Where("address_id = ? AND address_user_id = ?", id, userID).
		Delete(&addressModel.AddressModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus alamat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Alamat tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Alamat berhasil dihapus", nil)
}
