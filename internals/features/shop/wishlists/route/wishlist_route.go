package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wishlistController "tokobuku_backend/internals/features/shop/wishlists/controller"
)

func UserWishlistRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := wishlistController.NewWishlistController(db)

	wishlist := protected.Group("/wishlist")
	wishlist.Get("/", ctrl.List)
	wishlist.Post("/", ctrl.Add)
	wishlist.Get("/contains/:bookId", ctrl.Contains)
	wishlist.Delete("/:bookId", ctrl.Remove)
}
