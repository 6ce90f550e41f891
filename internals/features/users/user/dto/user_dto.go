package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "tokobuku_backend/internals/features/users/user/model"
)

/* ===== Requests ===== */

type UpdateUserRequest struct {
	UserName      *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserPhone     *string `json:"user_phone" validate:"omitempty,max=30"`
	UserGender    *string `json:"user_gender" validate:"omitempty,oneof=male female"`
	UserBirthDate *string `json:"user_birth_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.UserPhone != nil {
		v := strings.TrimSpace(*r.UserPhone)
		r.UserPhone = &v
	}
	if r.UserGender != nil {
		v := strings.ToLower(strings.TrimSpace(*r.UserGender))
		r.UserGender = &v
	}
}

// ToUpdates kolom yang dikirim saja yang diubah.
func (r *UpdateUserRequest) ToUpdates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if r.UserName != nil {
		updates["user_name"] = *r.UserName
	}
	if r.UserPhone != nil {
		updates["user_phone"] = *r.UserPhone
	}
	if r.UserGender != nil {
		updates["user_gender"] = *r.UserGender
	}
	if r.UserBirthDate != nil {
		parsed, err := time.Parse("2006-01-02", *r.UserBirthDate)
		if err != nil {
			return nil, err
		}
		updates["user_birth_date"] = parsed
	}
	return updates, nil
}

/* ===== Responses ===== */

type UserResponse struct {
	UserID           uuid.UUID  `json:"user_id"`
	UserName         string     `json:"user_name"`
	UserPhone        *string    `json:"user_phone,omitempty"`
	UserGender       *string    `json:"user_gender,omitempty"`
	UserBirthDate    *string    `json:"user_birth_date,omitempty"`
	UserRegisteredAt time.Time  `json:"user_registered_at"`
}

func FromUserModel(m *userModel.UserModel) UserResponse {
	resp := UserResponse{
		UserID:           m.UserID,
		UserName:         m.UserName,
		UserPhone:        m.UserPhone,
		UserGender:       m.UserGender,
		UserRegisteredAt: m.UserRegisteredAt,
	}
	if m.UserBirthDate != nil {
		v := m.UserBirthDate.Format("2006-01-02")
		resp.UserBirthDate = &v
	}
	return resp
}

func FromUserModels(ms []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromUserModel(&ms[i]))
	}
	return out
}
