package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	addressController "tokobuku_backend/internals/features/users/address/controller"
)

// UserAddressRoutes: alamat milik user login (group /api/u).
func UserAddressRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := addressController.NewAddressController(db)

	addresses := protected.Group("/addresses")
	addresses.Get("/", ctrl.List)
	addresses.Post("/", ctrl.Create)
	addresses.Put("/:id", ctrl.Update)
	addresses.Delete("/:id", ctrl.Delete)
}
