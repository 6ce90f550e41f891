package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan profil pembeli, 1:1 dengan authentications.
type UserModel struct {
	UserID     uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserAuthID uuid.UUID  `gorm:"column:user_auth_id;type:uuid;uniqueIndex;not null" json:"user_auth_id"`
	UserName   string     `gorm:"column:user_name;size:100;not null" json:"user_name"`
	UserPhone  *string    `gorm:"column:user_phone;size:20" json:"user_phone,omitempty"`
	UserGender *string    `gorm:"column:user_gender;type:varchar(10)" json:"user_gender,omitempty"`
	UserBirthDate *time.Time `gorm:"column:user_birth_date;type:date" json:"user_birth_date,omitempty"`

	UserRegisteredAt time.Time      `gorm:"column:user_registered_at;autoCreateTime" json:"user_registered_at"`
	UpdatedAt        time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
