package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel: maksimal satu review per pasangan (user, book), rating 1..5.
type ReviewModel struct {
	ReviewID     uuid.UUID `gorm:"column:review_id;type:uuid;default:gen_random_uuid();primaryKey" json:"review_id"`
	ReviewUserID uuid.UUID `gorm:"column:review_user_id;type:uuid;not null;uniqueIndex:uq_review_user_book" json:"review_user_id"`
	ReviewBookID uuid.UUID `gorm:"column:review_book_id;type:uuid;not null;uniqueIndex:uq_review_user_book" json:"review_book_id"`

	ReviewRating  int     `gorm:"column:review_rating;not null;check:review_rating BETWEEN 1 AND 5" json:"review_rating"`
	ReviewComment *string `gorm:"column:review_comment;type:text" json:"review_comment,omitempty"`

	CreatedAt time.Time      `gorm:"column:review_created_at;autoCreateTime" json:"review_created_at"`
	UpdatedAt time.Time      `gorm:"column:review_updated_at;autoUpdateTime" json:"review_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:review_deleted_at;index" json:"-"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
