package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	genreController "tokobuku_backend/internals/features/catalog/genres/controller"
)

func PublicGenreRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := genreController.NewGenreController(db)

	genres := api.Group("/genres")
	genres.Get("/", ctrl.List)
	genres.Get("/:id", ctrl.GetByID)
}

func AdminGenreRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := genreController.NewGenreController(db)

	genres := admin.Group("/genres")
	genres.Post("/", ctrl.Create)
	genres.Put("/:id", ctrl.Update)
	genres.Delete("/:id", ctrl.Delete)
}
