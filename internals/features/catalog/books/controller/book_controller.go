package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/catalog/books/dto"
	bookModel "tokobuku_backend/internals/features/catalog/books/model"
	"tokobuku_backend/internals/features/catalog/books/service"
	helper "tokobuku_backend/internals/helpers"
)

type BookController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db, Validate: validator.New()}
}

/* ==========================
   🌐 Public
========================== */

// GET /api/books?title=&genre_id=&tag=&author_id=&in_stock=&sort_by=&sort_order=
func (bc *BookController) List(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := dto.ListBooksQuery{
		Title:   c.Query("title"),
		Tag:     c.Query("tag"),
		InStock: c.Query("in_stock") == "true",
	}
	if raw := c.Query("genre_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "genre_id tidak valid")
		}
		q.GenreID = &id
	}
	if raw := c.Query("author_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "author_id tidak valid")
		}
		q.AuthorID = &id
	}

	books, total, err := service.ListBooks(bc.DB, q, params)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	bookIDs := make([]uuid.UUID, 0, len(books))
	for i := range books {
		bookIDs = append(bookIDs, books[i].BookID)
	}
	briefs, err := service.AuthorBriefsForBooks(bc.DB, bookIDs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		out = append(out, dto.FromBookModel(&books[i], briefs[books[i].BookID]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPagination(total, params))
}

// GET /api/books/:id
func (bc *BookController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
	}
	m, authors, err := service.GetBookDetail(bc.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromBookModel(m, authors))
}

/* ==========================
   🛡️ Admin
========================== */

// POST /api/a/books
func (bc *BookController) Create(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := bc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := service.CreateBook(bc.DB, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	created, authors, err := service.GetBookDetail(bc.DB, m.BookID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Buku berhasil dibuat", dto.FromBookModel(created, authors))
}

// PUT /api/a/books/:id
func (bc *BookController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
	}

	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := bc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if _, err := service.UpdateBook(bc.DB, id, &req); err != nil {
		return helper.FromFiberError(c, err)
	}

	updated, authors, err := service.GetBookDetail(bc.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Buku berhasil diperbarui", dto.FromBookModel(updated, authors))
}

// DELETE /api/a/books/:id
func (bc *BookController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
	}
	if err := service.DeleteBook(bc.DB, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Buku berhasil dihapus", nil)
}

// POST /api/a/books/:id/cover — multipart "image", dikonversi ke webp
func (bc *BookController) UploadCover(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
	}

	var m bookModel.BookModel
	if err := bc.DB.First(&m, "book_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File image wajib dikirim")
	}

	url, err := helper.SaveCoverImage("books", fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := bc.DB.Transaction(func(tx *gorm.DB) error {
		// cover lama diturunkan jadi gambar biasa
		if err := tx.Model(&bookModel.BookImageModel{}).
			Where("book_image_book_id = ? AND book_image_is_cover = true", id).
			Update("book_image_is_cover", false).Error; err != nil {
			return err
		}
		img := bookModel.BookImageModel{
			BookImageBookID:  id,
			BookImageURL:     url,
			BookImageIsCover: true,
		}
		return tx.Create(&img).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan cover")
	}

	return helper.JsonCreated(c, "Cover berhasil diupload", fiber.Map{"url": url})
}
