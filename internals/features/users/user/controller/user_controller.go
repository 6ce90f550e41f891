package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/users/user/dto"
	userModel "tokobuku_backend/internals/features/users/user/model"
	helper "tokobuku_backend/internals/helpers"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// kolom yang boleh dipakai sorting
var userSortColumns = map[string]string{
	"registered_at": "user_registered_at",
	"name":          "user_name",
}

/* ==========================
   🔐 Self service
========================== */

// GET /api/u/users/me
func (uc *UserController) GetMe(c *fiber.Ctx) error {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var u userModel.UserModel
	if err := uc.DB.First(&u, "user_auth_id = ?", authID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil user tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.FromUserModel(&u))
}

// PUT /api/u/users/me — partial update, hanya field yang dikirim
func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var u userModel.UserModel
	if err := uc.DB.First(&u, "user_auth_id = ?", authID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil user tidak ditemukan")
	}

	updates, err := req.ToUpdates()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_birth_date harus format YYYY-MM-DD")
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromUserModel(&u))
	}

	if err := uc.DB.Model(&u).Updates(updates).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Data duplikat", "Referensi tidak valid", "Gagal update profil"))
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.FromUserModel(&u))
}

/* ==========================
   🛡️ Admin
========================== */

// GET /api/a/users
func (uc *UserController) List(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "registered_at", "desc", helper.AdminOpts)

	q := uc.DB.Model(&userModel.UserModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("user_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	order, err := params.SafeOrderClause(userSortColumns, "registered_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak valid")
	}

	var users []userModel.UserModel
	if err := q.Order(order).
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonList(c, "OK", dto.FromUserModels(users), helper.BuildPagination(total, params))
}

// GET /api/a/users/:id
func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	var u userModel.UserModel
	if err := uc.DB.First(&u, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.FromUserModel(&u))
}

// DELETE /api/a/users/:id (soft delete)
func (uc *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	res := uc.DB.Where("user_id = ?", id).Delete(&userModel.UserModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "", "User masih direferensikan", "Gagal menghapus user"))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", nil)
}
