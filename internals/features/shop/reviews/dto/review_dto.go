package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookID  uuid.UUID `json:"book_id" validate:"required"`
	Rating  int       `json:"rating" validate:"required,min=1,max=5"`
	Comment *string   `json:"comment" validate:"omitempty,max=2000"`
}

func (r *CreateReviewRequest) Normalize() {
	if r.Comment != nil {
		v := strings.TrimSpace(*r.Comment)
		r.Comment = &v
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// RatingSummary agregat review per buku.
type RatingSummary struct {
	BookID        uuid.UUID `json:"book_id"`
	ReviewCount   int64     `json:"review_count"`
	AverageRating float64   `json:"average_rating"`
}
