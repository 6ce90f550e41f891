package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cartController "tokobuku_backend/internals/features/shop/carts/controller"
)

// UserCartRoutes: cart milik user login (group /api/u).
func UserCartRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := cartController.NewCartController(db)

	cart := protected.Group("/cart")
	cart.Get("/", ctrl.GetCart)
	cart.Delete("/", ctrl.Clear)
	cart.Post("/items", ctrl.AddItem)
	cart.Put("/items/:id", ctrl.UpdateItem)
	cart.Delete("/items/:id", ctrl.RemoveItem)
}
