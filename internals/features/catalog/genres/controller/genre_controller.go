package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
	"tokobuku_backend/internals/features/catalog/genres/dto"
	genreModel "tokobuku_backend/internals/features/catalog/genres/model"
	helper "tokobuku_backend/internals/helpers"
)

type GenreController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGenreController(db *gorm.DB) *GenreController {
	return &GenreController{DB: db, Validate: validator.New()}
}

// GET /api/genres — katalog genre, tidak dipaginasi (jumlahnya kecil)
func (gc *GenreController) List(c *fiber.Ctx) error {
	var genres []genreModel.GenreModel
	if err := gc.DB.Order("genre_name ASC").Find(&genres).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", genres)
}

// GET /api/genres/:id
func (gc *GenreController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "genre_id tidak valid")
	}
	var g genreModel.GenreModel
	if err := gc.DB.First(&g, "genre_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", g)
}

// POST /api/a/genres
func (gc *GenreController) Create(c *fiber.Ctx) error {
	var req dto.CreateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := gc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := gc.DB.Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Nama genre sudah dipakai", "Referensi tidak valid", "Gagal membuat genre"))
	}
	return helper.JsonCreated(c, "Genre berhasil dibuat", m)
}

// PUT /api/a/genres/:id
func (gc *GenreController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "genre_id tidak valid")
	}

	var req dto.UpdateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := gc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var g genreModel.GenreModel
	if err := gc.DB.First(&g, "genre_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre tidak ditemukan")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", g)
	}
	if err := gc.DB.Model(&g).Updates(updates).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Nama genre sudah dipakai", "Referensi tidak valid", "Gagal update genre"))
	}
	return helper.JsonUpdated(c, "Genre berhasil diperbarui", g)
}

// DELETE /api/a/genres/:id — 409 kalau masih dipakai buku
func (gc *GenreController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "genre_id tidak valid")
	}

	var refCount int64
	if err := gc.DB.Model(&bookModel.BookModel{}).
		Where("book_genre_id = ?", id).Count(&refCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if refCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Genre masih dipakai buku")
	}

	res := gc.DB.Where("genre_id = ?", id).Delete(&genreModel.GenreModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(res.Error, "", "Genre masih direferensikan", "Gagal menghapus genre"))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Genre berhasil dihapus", nil)
}
