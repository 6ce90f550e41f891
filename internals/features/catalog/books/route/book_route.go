package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "tokobuku_backend/internals/features/catalog/books/controller"
)

// PublicBookRoutes: katalog bisa dibaca tanpa login.
func PublicBookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := bookController.NewBookController(db)

	books := api.Group("/books")
	books.Get("/", ctrl.List)
	books.Get("/:id", ctrl.GetByID)
}

// AdminBookRoutes: mutasi katalog hanya admin (group /api/a).
func AdminBookRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := bookController.NewBookController(db)

	books := admin.Group("/books")
	books.Post("/", ctrl.Create)
	books.Put("/:id", ctrl.Update)
	books.Delete("/:id", ctrl.Delete)
	books.Post("/:id/cover", ctrl.UploadCover)
}
