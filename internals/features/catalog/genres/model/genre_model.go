package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenreModel struct {
	GenreID          uuid.UUID `gorm:"column:genre_id;type:uuid;default:gen_random_uuid();primaryKey" json:"genre_id"`
	GenreName        string    `gorm:"column:genre_name;size:100;uniqueIndex;not null" json:"genre_name"`
	GenreDescription *string   `gorm:"column:genre_description;type:text" json:"genre_description,omitempty"`

	CreatedAt time.Time      `gorm:"column:genre_created_at;autoCreateTime" json:"genre_created_at"`
	UpdatedAt time.Time      `gorm:"column:genre_updated_at;autoUpdateTime" json:"genre_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:genre_deleted_at;index" json:"-"`
}

func (GenreModel) TableName() string {
	return "genres"
}
