package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "tokobuku_backend/internals/features/finance/payments/route"
	orderRoute "tokobuku_backend/internals/features/orders/orders/route"
	cartRoute "tokobuku_backend/internals/features/shop/carts/route"
	reviewRoute "tokobuku_backend/internals/features/shop/reviews/route"
	wishlistRoute "tokobuku_backend/internals/features/shop/wishlists/route"
	addressRoute "tokobuku_backend/internals/features/users/address/route"
	authorRoute "tokobuku_backend/internals/features/users/author/route"
	userRoute "tokobuku_backend/internals/features/users/user/route"
)

// UserRoutes: semua endpoint yang butuh login (group /api/u).
func UserRoutes(protected fiber.Router, db *gorm.DB) {
	userRoute.UserUserRoutes(protected, db)
	authorRoute.UserAuthorRoutes(protected, db)
	addressRoute.UserAddressRoutes(protected, db)
	cartRoute.UserCartRoutes(protected, db)
	wishlistRoute.UserWishlistRoutes(protected, db)
	reviewRoute.UserReviewRoutes(protected, db)
	orderRoute.UserOrderRoutes(protected, db)
	paymentRoute.UserPaymentRoutes(protected, db)
}
