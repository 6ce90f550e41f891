package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthorModel: profil penulis sekaligus entitas katalog (M2M dengan books).
// author_auth_id nullable: author katalog boleh dibuat admin tanpa kredensial login.
type AuthorModel struct {
	AuthorID     uuid.UUID  `gorm:"column:author_id;type:uuid;default:gen_random_uuid();primaryKey" json:"author_id"`
	AuthorAuthID *uuid.UUID `gorm:"column:author_auth_id;type:uuid;uniqueIndex" json:"author_auth_id,omitempty"`
	AuthorName   string     `gorm:"column:author_name;size:150;not null" json:"author_name"`
	AuthorBio    *string    `gorm:"column:author_bio;type:text" json:"author_bio,omitempty"`

	CreatedAt time.Time      `gorm:"column:author_created_at;autoCreateTime" json:"author_created_at"`
	UpdatedAt time.Time      `gorm:"column:author_updated_at;autoUpdateTime" json:"author_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:author_deleted_at;index" json:"-"`
}

func (AuthorModel) TableName() string {
	return "authors"
}
