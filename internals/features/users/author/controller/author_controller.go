package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/users/author/dto"
	authorModel "tokobuku_backend/internals/features/users/author/model"
	helper "tokobuku_backend/internals/helpers"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

type AuthorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthorController(db *gorm.DB) *AuthorController {
	return &AuthorController{DB: db, Validate: validator.New()}
}

var authorSortColumns = map[string]string{
	"name":       "author_name",
	"created_at": "author_created_at",
}

/* ==========================
   🌐 Public
========================== */

// GET /api/authors
func (ac *AuthorController) List(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	q := ac.DB.Model(&authorModel.AuthorModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("author_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	order, err := params.SafeOrderClause(authorSortColumns, "name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak valid")
	}

	var authors []authorModel.AuthorModel
	if err := q.Order(order).
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&authors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonList(c, "OK", dto.FromAuthorModels(authors), helper.BuildPagination(total, params))
}

// GET /api/authors/:id
func (ac *AuthorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "author_id tidak valid")
	}
	var a authorModel.AuthorModel
	if err := ac.DB.First(&a, "author_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Author tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.FromAuthorModel(&a))
}

/* ==========================
   🔐 Author self service
========================== */

// GET /api/u/authors/me
func (ac *AuthorController) GetMe(c *fiber.Ctx) error {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var a authorModel.AuthorModel
	if err := ac.DB.First(&a, "author_auth_id = ?", authID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil author tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.FromAuthorModel(&a))
}

// PUT /api/u/authors/me
func (ac *AuthorController) UpdateMe(c *fiber.Ctx) error {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateAuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var a authorModel.AuthorModel
	if err := ac.DB.First(&a, "author_auth_id = ?", authID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profil author tidak ditemukan")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromAuthorModel(&a))
	}
	if err := ac.DB.Model(&a).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil author")
	}
	return helper.JsonUpdated(c, "Profil author berhasil diperbarui", dto.FromAuthorModel(&a))
}

/* ==========================
   🛡️ Admin (author katalog)
========================== */

// POST /api/a/authors — author katalog tanpa credential
func (ac *AuthorController) Create(c *fiber.Ctx) error {
	var req dto.CreateAuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ac.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Author sudah ada", "Referensi tidak valid", "Gagal membuat author"))
	}
	return helper.JsonCreated(c, "Author berhasil dibuat", dto.FromAuthorModel(m))
}

// PUT /api/a/authors/:id
func (ac *AuthorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "author_id tidak valid")
	}

	var req dto.UpdateAuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var a authorModel.AuthorModel
	if err := ac.DB.First(&a, "author_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Author tidak ditemukan")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromAuthorModel(&a))
	}
	if err := ac.DB.Model(&a).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update author")
	}
	return helper.JsonUpdated(c, "Author berhasil diperbarui", dto.FromAuthorModel(&a))
}

// DELETE /api/a/authors/:id — 409 kalau masih dipakai buku
func (ac *AuthorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "author_id tidak valid")
	}

	var refCount int64
	if err := ac.DB.Table("author_books").
		Where("author_book_author_id = ?", id).
		Count(&refCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if refCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Author masih terhubung ke buku")
	}

	res := ac.DB.Where("author_id = ?", id).Delete(&authorModel.AuthorModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "", "Author masih direferensikan", "Gagal menghapus author"))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Author tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Author berhasil dihapus", nil)
}
