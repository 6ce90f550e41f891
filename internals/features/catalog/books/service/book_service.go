package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/catalog/books/dto"
	bookModel "tokobuku_backend/internals/features/catalog/books/model"
	genreModel "tokobuku_backend/internals/features/catalog/genres/model"
	authorModel "tokobuku_backend/internals/features/users/author/model"
	helper "tokobuku_backend/internals/helpers"
)

/* ==========================
   Validasi referensi
========================== */

// ValidateGenreID 400 dengan ID offender kalau genre tidak ada.
func ValidateGenreID(db *gorm.DB, genreID *uuid.UUID) error {
	if genreID == nil {
		return nil
	}
	var count int64
	if err := db.Model(&genreModel.GenreModel{}).
		Where("genre_id = ?", *genreID).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Genre tidak ditemukan: %s", genreID.String()))
	}
	return nil
}

// ValidateAuthorIDs sebut SEMUA id yang tidak dikenal, bukan cuma yang pertama.
func ValidateAuthorIDs(db *gorm.DB, authorIDs []uuid.UUID) error {
	if len(authorIDs) == 0 {
		return nil
	}
	var found []uuid.UUID
	if err := db.Model(&authorModel.AuthorModel{}).
		Where("author_id IN ?", authorIDs).
		Pluck("author_id", &found).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	known := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		known[id] = true
	}
	var missing []string
	for _, id := range authorIDs {
		if !known[id] {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Author tidak ditemukan: "+strings.Join(missing, ", "))
	}
	return nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

/* ==========================
   Create / Update / Delete
========================== */

// CreateBook: buku + relasi author + image rows dalam satu transaksi.
func CreateBook(db *gorm.DB, req *dto.CreateBookRequest) (*bookModel.BookModel, error) {
	if err := ValidateGenreID(db, req.BookGenreID); err != nil {
		return nil, err
	}
	authorIDs := dedupeIDs(req.AuthorIDs)
	if err := ValidateAuthorIDs(db, authorIDs); err != nil {
		return nil, err
	}

	m, err := req.ToModel()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "book_published_at harus format YYYY-MM-DD")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return helper.TranslateDBError(err, "Buku duplikat", "Referensi tidak valid", "Gagal membuat buku")
		}
		for _, authorID := range authorIDs {
			link := bookModel.AuthorBookModel{
				AuthorBookBookID:   m.BookID,
				AuthorBookAuthorID: authorID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return helper.TranslateDBError(err, "Relasi author duplikat", "Author tidak valid", "Gagal menghubungkan author")
			}
		}
		for i, url := range req.ImageURLs {
			img := bookModel.BookImageModel{
				BookImageBookID:  m.BookID,
				BookImageURL:     url,
				BookImageIsCover: i == 0, // gambar pertama jadi cover
			}
			if err := tx.Create(&img).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan gambar buku")
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateBook: partial update; author_ids (kalau dikirim) REPLACE relasi lama.
func UpdateBook(db *gorm.DB, bookID uuid.UUID, req *dto.UpdateBookRequest) (*bookModel.BookModel, error) {
	var m bookModel.BookModel
	if err := db.First(&m, "book_id = ?", bookID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	if err := ValidateGenreID(db, req.BookGenreID); err != nil {
		return nil, err
	}
	var authorIDs []uuid.UUID
	if req.AuthorIDs != nil {
		authorIDs = dedupeIDs(*req.AuthorIDs)
		if err := ValidateAuthorIDs(db, authorIDs); err != nil {
			return nil, err
		}
	}

	updates, err := req.ToUpdates()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "book_published_at harus format YYYY-MM-DD")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&m).Updates(updates).Error; err != nil {
				return helper.TranslateDBError(err, "Buku duplikat", "Referensi tidak valid", "Gagal update buku")
			}
		}
		if req.AuthorIDs != nil {
			if err := tx.Where("author_book_book_id = ?", bookID).
				Delete(&bookModel.AuthorBookModel{}).Error; err != nil {
				return err
			}
			for _, authorID := range authorIDs {
				link := bookModel.AuthorBookModel{
					AuthorBookBookID:   bookID,
					AuthorBookAuthorID: authorID,
				}
				if err := tx.Create(&link).Error; err != nil {
					return helper.TranslateDBError(err, "Relasi author duplikat", "Author tidak valid", "Gagal menghubungkan author")
				}
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteBook: 409 kalau buku sudah pernah dipesan (order_items masih refer).
func DeleteBook(db *gorm.DB, bookID uuid.UUID) error {
	var refCount int64
	if err := db.Table("order_items").
		Where("order_item_book_id = ?", bookID).Count(&refCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if refCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Buku sudah pernah dipesan, tidak bisa dihapus")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("book_id = ?", bookID).Delete(&bookModel.BookModel{})
		if res.Error != nil {
			return helper.TranslateDBError(res.Error, "", "Buku masih direferensikan", "Gagal menghapus buku")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		// relasi ikut dibersihkan
		if err := tx.Where("author_book_book_id = ?", bookID).
			Delete(&bookModel.AuthorBookModel{}).Error; err != nil {
			return err
		}
		return tx.Where("book_image_book_id = ?", bookID).
			Delete(&bookModel.BookImageModel{}).Error
	})
}

/* ==========================
   Query katalog
========================== */

var bookSortColumns = map[string]string{
	"price":        "book_price_idr",
	"published_at": "book_published_at",
	"sold_count":   "book_sold_count",
	"created_at":   "book_created_at",
	"title":        "book_title",
}

func BookSortColumns() map[string]string { return bookSortColumns }

// ListBooks apply filter + pagination, preload genre & images.
func ListBooks(db *gorm.DB, q dto.ListBooksQuery, params helper.Params) ([]bookModel.BookModel, int64, error) {
	base := db.Model(&bookModel.BookModel{})

	if q.Title != "" {
		base = base.Where("book_title ILIKE ?", "%"+q.Title+"%")
	}
	if q.GenreID != nil {
		base = base.Where("book_genre_id = ?", *q.GenreID)
	}
	if q.Tag != "" {
		base = base.Where("? = ANY(book_tags)", strings.ToLower(q.Tag))
	}
	if q.AuthorID != nil {
		base = base.Where("book_id IN (SELECT author_book_book_id FROM author_books WHERE author_book_author_id = ?)", *q.AuthorID)
	}
	if q.InStock {
		base = base.Where("book_stock > 0")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	order, err := params.SafeOrderClause(bookSortColumns, "created_at")
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "sort_by tidak valid")
	}

	var books []bookModel.BookModel
	if err := base.
		Preload("BookGenre").
		Preload("BookImages").
		Order(order).
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&books).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return books, total, nil
}

// AuthorBriefsForBooks resolve nama author untuk sekumpulan buku sekali query.
func AuthorBriefsForBooks(db *gorm.DB, bookIDs []uuid.UUID) (map[uuid.UUID][]dto.BookAuthorBrief, error) {
	out := make(map[uuid.UUID][]dto.BookAuthorBrief, len(bookIDs))
	if len(bookIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		BookID     uuid.UUID `gorm:"column:author_book_book_id"`
		AuthorID   uuid.UUID `gorm:"column:author_id"`
		AuthorName string    `gorm:"column:author_name"`
	}
	if err := db.Table("author_books").
		Select("author_books.author_book_book_id, authors.author_id, authors.author_name").
		Joins("JOIN authors ON authors.author_id = author_books.author_book_author_id").
		Where("author_books.author_book_book_id IN ?", bookIDs).
		Scan(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	for _, r := range rows {
		out[r.BookID] = append(out[r.BookID], dto.BookAuthorBrief{
			AuthorID:   r.AuthorID,
			AuthorName: r.AuthorName,
		})
	}
	return out, nil
}

// GetBookDetail satu buku + genre + images + authors.
func GetBookDetail(db *gorm.DB, bookID uuid.UUID) (*bookModel.BookModel, []dto.BookAuthorBrief, error) {
	var m bookModel.BookModel
	if err := db.
		Preload("BookGenre").
		Preload("BookImages").
		First(&m, "book_id = ?", bookID).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Buku tidak ditemukan")
	}
	briefs, err := AuthorBriefsForBooks(db, []uuid.UUID{bookID})
	if err != nil {
		return nil, nil, err
	}
	return &m, briefs[bookID], nil
}
