package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressModel struct {
	AddressID     uuid.UUID `gorm:"column:address_id;type:uuid;default:gen_random_uuid();primaryKey" json:"address_id"`
	AddressUserID uuid.UUID `gorm:"column:address_user_id;type:uuid;not null;index" json:"address_user_id"`

	AddressRecipient  string  `gorm:"column:address_recipient;size:100;not null" json:"address_recipient"`
	AddressPhone      string  `gorm:"column:address_phone;size:20;not null" json:"address_phone"`
	AddressLine       string  `gorm:"column:address_line;type:text;not null" json:"address_line"`
	AddressCity       string  `gorm:"column:address_city;size:100;not null" json:"address_city"`
	AddressProvince   string  `gorm:"column:address_province;size:100;not null" json:"address_province"`
	AddressPostalCode *string `gorm:"column:address_postal_code;size:10" json:"address_postal_code,omitempty"`
	AddressIsDefault  bool    `gorm:"column:address_is_default;not null;default:false" json:"address_is_default"`

	CreatedAt time.Time      `gorm:"column:address_created_at;autoCreateTime" json:"address_created_at"`
	UpdatedAt time.Time      `gorm:"column:address_updated_at;autoUpdateTime" json:"address_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:address_deleted_at;index" json:"-"`
}

func (AddressModel) TableName() string {
	return "addresses"
}

// FormatSnapshot membentuk string alamat immutable untuk disimpan di order.
func (a *AddressModel) FormatSnapshot() string {
	parts := []string{a.AddressRecipient, a.AddressLine, a.AddressCity, a.AddressProvince}
	if a.AddressPostalCode != nil && strings.TrimSpace(*a.AddressPostalCode) != "" {
		parts = append(parts, *a.AddressPostalCode)
	}
	return strings.Join(parts, ", ")
}
