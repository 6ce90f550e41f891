package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoute "tokobuku_backend/internals/features/catalog/books/route"
	genreRoute "tokobuku_backend/internals/features/catalog/genres/route"
	paymentRoute "tokobuku_backend/internals/features/finance/payments/route"
	reviewRoute "tokobuku_backend/internals/features/shop/reviews/route"
	authRoute "tokobuku_backend/internals/features/users/auth/route"
	authorRoute "tokobuku_backend/internals/features/users/author/route"
)

// PublicRoutes: katalog + auth + webhook, tanpa token.
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(api, db)
	bookRoute.PublicBookRoutes(api, db)
	genreRoute.PublicGenreRoutes(api, db)
	authorRoute.PublicAuthorRoutes(api, db)
	reviewRoute.PublicReviewRoutes(api, db)
	paymentRoute.PublicPaymentRoutes(api, db)
}
