package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthorBookModel: join M2M books <-> authors.
// Unik per pasangan (book, author).
type AuthorBookModel struct {
	AuthorBookID       uuid.UUID `gorm:"column:author_book_id;type:uuid;default:gen_random_uuid();primaryKey" json:"author_book_id"`
	AuthorBookBookID   uuid.UUID `gorm:"column:author_book_book_id;type:uuid;not null;uniqueIndex:uq_author_book" json:"author_book_book_id"`
	AuthorBookAuthorID uuid.UUID `gorm:"column:author_book_author_id;type:uuid;not null;uniqueIndex:uq_author_book" json:"author_book_author_id"`

	CreatedAt time.Time `gorm:"column:author_book_created_at;autoCreateTime" json:"author_book_created_at"`
}

func (AuthorBookModel) TableName() string {
	return "author_books"
}
