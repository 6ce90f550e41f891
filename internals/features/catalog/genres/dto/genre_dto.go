package dto

import (
	"strings"

	genreModel "tokobuku_backend/internals/features/catalog/genres/model"
)

type CreateGenreRequest struct {
	GenreName        string  `json:"genre_name" validate:"required,min=2,max=100"`
	GenreDescription *string `json:"genre_description" validate:"omitempty,max=1000"`
}

func (r *CreateGenreRequest) Normalize() {
	r.GenreName = strings.TrimSpace(r.GenreName)
	if r.GenreDescription != nil {
		v := strings.TrimSpace(*r.GenreDescription)
		r.GenreDescription = &v
	}
}

func (r *CreateGenreRequest) ToModel() *genreModel.GenreModel {
	return &genreModel.GenreModel{
		GenreName:        r.GenreName,
		GenreDescription: r.GenreDescription,
	}
}

type UpdateGenreRequest struct {
	GenreName        *string `json:"genre_name" validate:"omitempty,min=2,max=100"`
	GenreDescription *string `json:"genre_description" validate:"omitempty,max=1000"`
}

func (r *UpdateGenreRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.GenreName != nil {
		updates["genre_name"] = strings.TrimSpace(*r.GenreName)
	}
	if r.GenreDescription != nil {
		updates["genre_description"] = strings.TrimSpace(*r.GenreDescription)
	}
	return updates
}
