package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
)

/* ===== Requests ===== */

type CreateBookRequest struct {
	BookTitle       string      `json:"book_title" validate:"required,min=1,max=255"`
	BookPriceIDR    int64       `json:"book_price_idr" validate:"min=0"`
	BookDescription *string     `json:"book_description" validate:"omitempty,max=5000"`
	BookStock       int         `json:"book_stock" validate:"min=0"`
	BookPublishedAt *string     `json:"book_published_at" validate:"omitempty,datetime=2006-01-02"`
	BookGenreID     *uuid.UUID  `json:"book_genre_id"`
	BookTags        []string    `json:"book_tags" validate:"omitempty,dive,min=1,max=50"`
	AuthorIDs       []uuid.UUID `json:"author_ids"`
	ImageURLs       []string    `json:"image_urls" validate:"omitempty,dive,url"`
}

func (r *CreateBookRequest) Normalize() {
	r.BookTitle = strings.TrimSpace(r.BookTitle)
	if r.BookDescription != nil {
		v := strings.TrimSpace(*r.BookDescription)
		r.BookDescription = &v
	}
	tags := make([]string, 0, len(r.BookTags))
	for _, t := range r.BookTags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	r.BookTags = tags
}

func (r *CreateBookRequest) ToModel() (*bookModel.BookModel, error) {
	m := &bookModel.BookModel{
		BookTitle:       r.BookTitle,
		BookPriceIDR:    r.BookPriceIDR,
		BookDescription: r.BookDescription,
		BookStock:       r.BookStock,
		BookGenreID:     r.BookGenreID,
		BookTags:        pq.StringArray(r.BookTags),
	}
	if r.BookPublishedAt != nil && *r.BookPublishedAt != "" {
		parsed, err := time.Parse("2006-01-02", *r.BookPublishedAt)
		if err != nil {
			return nil, err
		}
		m.BookPublishedAt = &parsed
	}
	return m, nil
}

type UpdateBookRequest struct {
	BookTitle       *string      `json:"book_title" validate:"omitempty,min=1,max=255"`
	BookPriceIDR    *int64       `json:"book_price_idr" validate:"omitempty,min=0"`
	BookDescription *string      `json:"book_description" validate:"omitempty,max=5000"`
	BookStock       *int         `json:"book_stock" validate:"omitempty,min=0"`
	BookPublishedAt *string      `json:"book_published_at" validate:"omitempty,datetime=2006-01-02"`
	BookGenreID     *uuid.UUID   `json:"book_genre_id"`
	BookTags        *[]string    `json:"book_tags"`
	AuthorIDs       *[]uuid.UUID `json:"author_ids"` // nil = jangan sentuh relasi author
}

func (r *UpdateBookRequest) ToUpdates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if r.BookTitle != nil {
		updates["book_title"] = strings.TrimSpace(*r.BookTitle)
	}
	if r.BookPriceIDR != nil {
		updates["book_price_idr"] = *r.BookPriceIDR
	}
	if r.BookDescription != nil {
		updates["book_description"] = strings.TrimSpace(*r.BookDescription)
	}
	if r.BookStock != nil {
		updates["book_stock"] = *r.BookStock
	}
	if r.BookGenreID != nil {
		updates["book_genre_id"] = *r.BookGenreID
	}
	if r.BookTags != nil {
		tags := make([]string, 0, len(*r.BookTags))
		for _, t := range *r.BookTags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				tags = append(tags, t)
			}
		}
		updates["book_tags"] = pq.StringArray(tags)
	}
	if r.BookPublishedAt != nil && *r.BookPublishedAt != "" {
		parsed, err := time.Parse("2006-01-02", *r.BookPublishedAt)
		if err != nil {
			return nil, err
		}
		updates["book_published_at"] = parsed
	}
	return updates, nil
}

/* ===== Query params list buku ===== */

type ListBooksQuery struct {
	Title    string     // substring, case-insensitive
	GenreID  *uuid.UUID // exact match
	Tag      string     // ada di book_tags
	AuthorID *uuid.UUID
	InStock  bool // hanya stok > 0
}

/* ===== Responses ===== */

type BookAuthorBrief struct {
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
}

type BookResponse struct {
	BookID          uuid.UUID         `json:"book_id"`
	BookTitle       string            `json:"book_title"`
	BookPriceIDR    int64             `json:"book_price_idr"`
	BookDescription *string           `json:"book_description,omitempty"`
	BookStock       int               `json:"book_stock"`
	BookSoldCount   int               `json:"book_sold_count"`
	BookPublishedAt *string           `json:"book_published_at,omitempty"`
	GenreID         *uuid.UUID        `json:"genre_id,omitempty"`
	GenreName       *string           `json:"genre_name,omitempty"`
	BookTags        []string          `json:"book_tags"`
	Authors         []BookAuthorBrief `json:"authors"`
	Images          []BookImageBrief  `json:"images"`
	CreatedAt       time.Time         `json:"created_at"`
}

type BookImageBrief struct {
	BookImageID uuid.UUID `json:"book_image_id"`
	URL         string    `json:"url"`
	IsCover     bool      `json:"is_cover"`
}

func FromBookModel(m *bookModel.BookModel, authors []BookAuthorBrief) BookResponse {
	resp := BookResponse{
		BookID:          m.BookID,
		BookTitle:       m.BookTitle,
		BookPriceIDR:    m.BookPriceIDR,
		BookDescription: m.BookDescription,
		BookStock:       m.BookStock,
		BookSoldCount:   m.BookSoldCount,
		GenreID:         m.BookGenreID,
		BookTags:        []string(m.BookTags),
		Authors:         authors,
		Images:          make([]BookImageBrief, 0, len(m.BookImages)),
		CreatedAt:       m.CreatedAt,
	}
	if resp.BookTags == nil {
		resp.BookTags = []string{}
	}
	if resp.Authors == nil {
		resp.Authors = []BookAuthorBrief{}
	}
	if m.BookPublishedAt != nil {
		v := m.BookPublishedAt.Format("2006-01-02")
		resp.BookPublishedAt = &v
	}
	if m.BookGenre != nil {
		resp.GenreName = &m.BookGenre.GenreName
	}
	for _, img := range m.BookImages {
		resp.Images = append(resp.Images, BookImageBrief{
			BookImageID: img.BookImageID,
			URL:         img.BookImageURL,
			IsCover:     img.BookImageIsCover,
		})
	}
	return resp
}
