package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tokobuku_backend/internals/constants"
	authorController "tokobuku_backend/internals/features/users/author/controller"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

// PublicAuthorRoutes: katalog author bisa dibaca tanpa login.
func PublicAuthorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authorController.NewAuthorController(db)

	authors := api.Group("/authors")
	authors.Get("/", ctrl.List)
	authors.Get("/:id", ctrl.GetByID)
}

// UserAuthorRoutes: self-service profil author (group /api/u).
// Admin juga boleh lewat, biar bisa ngecek endpointnya.
func UserAuthorRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := authorController.NewAuthorController(db)

	authors := protected.Group("/authors",
		authMiddleware.OnlyRoles(constants.RoleErrorAuthor("profil author"), constants.StaffRoles...))
	authors.Get("/me", ctrl.GetMe)
	authors.Put("/me", ctrl.UpdateMe)
}

// AdminAuthorRoutes: CRUD author katalog (group /api/a).
func AdminAuthorRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := authorController.NewAuthorController(db)

	authors := admin.Group("/authors")
	authors.Post("/", ctrl.Create)
	authors.Put("/:id", ctrl.Update)
	authors.Delete("/:id", ctrl.Delete)
}
