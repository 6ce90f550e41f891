package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoute "tokobuku_backend/internals/features/catalog/books/route"
	genreRoute "tokobuku_backend/internals/features/catalog/genres/route"
	paymentRoute "tokobuku_backend/internals/features/finance/payments/route"
	orderRoute "tokobuku_backend/internals/features/orders/orders/route"
	authorRoute "tokobuku_backend/internals/features/users/author/route"
	userRoute "tokobuku_backend/internals/features/users/user/route"
)

// AdminRoutes: mutasi katalog + manajemen order/payment/user (group /api/a).
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	bookRoute.AdminBookRoutes(admin, db)
	genreRoute.AdminGenreRoutes(admin, db)
	authorRoute.AdminAuthorRoutes(admin, db)
	userRoute.AdminUserRoutes(admin, db)
	orderRoute.AdminOrderRoutes(admin, db)
	paymentRoute.AdminPaymentRoutes(admin, db)
}
