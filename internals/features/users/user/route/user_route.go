package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "tokobuku_backend/internals/features/users/user/controller"
)

// UserUserRoutes: self-service profil (sudah lewat AuthMiddleware di group /api/u).
func UserUserRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := protected.Group("/users")
	users.Get("/me", ctrl.GetMe)
	users.Put("/me", ctrl.UpdateMe)
}

// AdminUserRoutes: manajemen user oleh admin (group /api/a).
func AdminUserRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/", ctrl.List)
	users.Get("/:id", ctrl.GetByID)
	users.Delete("/:id", ctrl.Delete)
}
