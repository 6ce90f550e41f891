package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID     uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`
	AdminAuthID uuid.UUID `gorm:"column:admin_auth_id;type:uuid;uniqueIndex;not null" json:"admin_auth_id"`
	AdminName   string    `gorm:"column:admin_name;size:100;not null" json:"admin_name"`

	CreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	UpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
