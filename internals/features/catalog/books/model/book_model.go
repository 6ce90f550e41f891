package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	genreModel "tokobuku_backend/internals/features/catalog/genres/model"
)

// BookModel: harga integer IDR, stok dijaga invariant >= 0 oleh check constraint
// + guard aplikasi di order service.
type BookModel struct {
	BookID          uuid.UUID  `gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_id"`
	BookTitle       string     `gorm:"column:book_title;size:255;not null" json:"book_title"`
	BookPriceIDR    int64      `gorm:"column:book_price_idr;not null;check:book_price_idr >= 0" json:"book_price_idr"`
	BookDescription *string    `gorm:"column:book_description;type:text" json:"book_description,omitempty"`
	BookStock       int        `gorm:"column:book_stock;not null;default:0;check:book_stock >= 0" json:"book_stock"`
	BookSoldCount   int        `gorm:"column:book_sold_count;not null;default:0" json:"book_sold_count"`
	BookPublishedAt *time.Time `gorm:"column:book_published_at;type:date" json:"book_published_at,omitempty"`

	BookGenreID *uuid.UUID             `gorm:"column:book_genre_id;type:uuid;index" json:"book_genre_id,omitempty"`
	BookGenre   *genreModel.GenreModel `gorm:"foreignKey:BookGenreID;references:GenreID" json:"book_genre,omitempty"`

	BookTags pq.StringArray `gorm:"column:book_tags;type:text[]" json:"book_tags,omitempty"`

	BookImages  []BookImageModel  `gorm:"foreignKey:BookImageBookID;references:BookID" json:"book_images,omitempty"`
	BookAuthors []AuthorBookModel `gorm:"foreignKey:AuthorBookBookID;references:BookID" json:"book_authors,omitempty"`

	CreatedAt time.Time      `gorm:"column:book_created_at;autoCreateTime" json:"book_created_at"`
	UpdatedAt time.Time      `gorm:"column:book_updated_at;autoUpdateTime" json:"book_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:book_deleted_at;index" json:"-"`
}

func (BookModel) TableName() string {
	return "books"
}
