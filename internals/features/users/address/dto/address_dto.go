package dto

import (
	"strings"

	"github.com/google/uuid"

	addressModel "tokobuku_backend/internals/features/users/address/model"
)

type CreateAddressRequest struct {
	AddressRecipient  string  `json:"address_recipient" validate:"required,min=2,max=100"`
	AddressPhone      string  `json:"address_phone" validate:"required,max=20"`
	AddressLine       string  `json:"address_line" validate:"required"`
	AddressCity       string  `json:"address_city" validate:"required,max=100"`
	AddressProvince   string  `json:"address_province" validate:"required,max=100"`
	AddressPostalCode *string `json:"address_postal_code" validate:"omitempty,max=10"`
	AddressIsDefault  bool    `json:"address_is_default"`
}

func (r *CreateAddressRequest) Normalize() {
	r.AddressRecipient = strings.TrimSpace(r.AddressRecipient)
	r.AddressPhone = strings.TrimSpace(r.AddressPhone)
	r.AddressLine = strings.TrimSpace(r.AddressLine)
	r.AddressCity = strings.TrimSpace(r.AddressCity)
	r.AddressProvince = strings.TrimSpace(r.AddressProvince)
	if r.AddressPostalCode != nil {
		v := strings.TrimSpace(*r.AddressPostalCode)
		r.AddressPostalCode = &v
	}
}

func (r *CreateAddressRequest) ToModel(userID uuid.UUID) *addressModel.AddressModel {
	return &addressModel.AddressModel{
		AddressUserID:     userID,
		AddressRecipient:  r.AddressRecipient,
		AddressPhone:      r.AddressPhone,
		AddressLine:       r.AddressLine,
		AddressCity:       r.AddressCity,
		AddressProvince:   r.AddressProvince,
		AddressPostalCode: r.AddressPostalCode,
		AddressIsDefault:  r.AddressIsDefault,
	}
}

type UpdateAddressRequest struct {
	AddressRecipient  *string `json:"address_recipient" validate:"omitempty,min=2,max=100"`
	AddressPhone      *string `json:"address_phone" validate:"omitempty,max=20"`
	AddressLine       *string `json:"address_line" validate:"omitempty"`
	AddressCity       *string `json:"address_city" validate:"omitempty,max=100"`
	AddressProvince   *string `json:"address_province" validate:"omitempty,max=100"`
	AddressPostalCode *string `json:"address_postal_code" validate:"omitempty,max=10"`
	AddressIsDefault  *bool   `json:"address_is_default"`
}

func (r *UpdateAddressRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	set := func(key string, v *string) {
		if v != nil {
			updates[key] = strings.TrimSpace(*v)
		}
	}
	set("address_recipient", r.AddressRecipient)
	set("address_phone", r.AddressPhone)
	set("address_line", r.AddressLine)
	set("address_city", r.AddressCity)
	set("address_province", r.AddressProvince)
	set("address_postal_code", r.AddressPostalCode)
	if r.AddressIsDefault != nil {
		updates["address_is_default"] = *r.AddressIsDefault
	}
	return updates
}
