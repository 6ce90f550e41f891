package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "tokobuku_backend/internals/features/shop/reviews/controller"
)

// PublicReviewRoutes: review bisa dibaca tanpa login.
func PublicReviewRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reviewController.NewReviewController(db)

	api.Get("/books/:bookId/reviews", ctrl.ListByBook)
	api.Get("/books/:bookId/reviews/summary", ctrl.Summary)
}

// UserReviewRoutes: tulis/ubah/hapus review (group /api/u).
func UserReviewRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := reviewController.NewReviewController(db)

	reviews := protected.Group("/reviews")
	reviews.Post("/", ctrl.Create)
	reviews.Put("/:id", ctrl.Update)
	reviews.Delete("/:id", ctrl.Delete)
}
