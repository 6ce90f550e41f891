package dto

import (
	"strings"

	"github.com/google/uuid"

	authorModel "tokobuku_backend/internals/features/users/author/model"
)

/* ===== Requests ===== */

// CreateAuthorRequest dipakai admin untuk author katalog (tanpa credential).
type CreateAuthorRequest struct {
	AuthorName string  `json:"author_name" validate:"required,min=2,max=100"`
	AuthorBio  *string `json:"author_bio" validate:"omitempty,max=2000"`
}

func (r *CreateAuthorRequest) Normalize() {
	r.AuthorName = strings.TrimSpace(r.AuthorName)
	if r.AuthorBio != nil {
		v := strings.TrimSpace(*r.AuthorBio)
		r.AuthorBio = &v
	}
}

func (r *CreateAuthorRequest) ToModel() *authorModel.AuthorModel {
	return &authorModel.AuthorModel{
		AuthorName: r.AuthorName,
		AuthorBio:  r.AuthorBio,
	}
}

type UpdateAuthorRequest struct {
	AuthorName *string `json:"author_name" validate:"omitempty,min=2,max=100"`
	AuthorBio  *string `json:"author_bio" validate:"omitempty,max=2000"`
}

func (r *UpdateAuthorRequest) Normalize() {
	if r.AuthorName != nil {
		v := strings.TrimSpace(*r.AuthorName)
		r.AuthorName = &v
	}
	if r.AuthorBio != nil {
		v := strings.TrimSpace(*r.AuthorBio)
		r.AuthorBio = &v
	}
}

func (r *UpdateAuthorRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.AuthorName != nil {
		updates["author_name"] = *r.AuthorName
	}
	if r.AuthorBio != nil {
		updates["author_bio"] = *r.AuthorBio
	}
	return updates
}

/* ===== Responses ===== */

type AuthorResponse struct {
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorBio  *string   `json:"author_bio,omitempty"`
	Registered bool      `json:"registered"` // true kalau punya credential login
}

func FromAuthorModel(m *authorModel.AuthorModel) AuthorResponse {
	return AuthorResponse{
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		AuthorBio:  m.AuthorBio,
		Registered: m.AuthorAuthID != nil,
	}
}

func FromAuthorModels(ms []authorModel.AuthorModel) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromAuthorModel(&ms[i]))
	}
	return out
}
