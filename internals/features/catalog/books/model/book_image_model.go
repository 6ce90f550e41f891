package model

import (
	"time"

	"github.com/google/uuid"
)

type BookImageModel struct {
	BookImageID     uuid.UUID `gorm:"column:book_image_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_image_id"`
	BookImageBookID uuid.UUID `gorm:"column:book_image_book_id;type:uuid;not null;index" json:"book_image_book_id"`
	BookImageURL    string    `gorm:"column:book_image_url;type:text;not null" json:"book_image_url"`
	BookImageIsCover bool     `gorm:"column:book_image_is_cover;not null;default:false" json:"book_image_is_cover"`

	CreatedAt time.Time `gorm:"column:book_image_created_at;autoCreateTime" json:"book_image_created_at"`
}

func (BookImageModel) TableName() string {
	return "book_images"
}
