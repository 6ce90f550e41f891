package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser   = "user"
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// AuthenticationModel = credential row. Profile (user/author/admin) hidup di
// tabel terpisah 1:1 via auth_id, dipilih oleh kolom auth_role.
type AuthenticationModel struct {
	AuthID           uuid.UUID `gorm:"column:auth_id;type:uuid;default:gen_random_uuid();primaryKey" json:"auth_id"`
	AuthEmail        string    `gorm:"column:auth_email;size:255;uniqueIndex;not null" json:"auth_email"`
	AuthPasswordHash string    `gorm:"column:auth_password_hash;not null" json:"-"`
	AuthRole         string    `gorm:"column:auth_role;type:varchar(20);not null;default:'user'" json:"auth_role"`
	AuthGoogleID     *string   `gorm:"column:auth_google_id;size:255;uniqueIndex" json:"-"`

	CreatedAt time.Time      `gorm:"column:auth_created_at;autoCreateTime" json:"auth_created_at"`
	UpdatedAt time.Time      `gorm:"column:auth_updated_at;autoUpdateTime" json:"auth_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:auth_deleted_at;index" json:"-"`
}

func (AuthenticationModel) TableName() string {
	return "authentications"
}

func (a *AuthenticationModel) IsAdmin() bool  { return a.AuthRole == RoleAdmin }
func (a *AuthenticationModel) IsAuthor() bool { return a.AuthRole == RoleAuthor }
