package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tokobuku_backend/internals/constants"
	"tokobuku_backend/internals/route/details"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

// SetupRoutes susun tiga lapis akses:
//
//	/api    -> publik (katalog, auth, webhook gateway)
//	/api/u  -> butuh token valid
//	/api/a  -> butuh token valid + role admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.PublicRoutes(api, db)

	protected := api.Group("/u", authMiddleware.AuthMiddleware(db))
	details.UserRoutes(protected, db)

	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen toko"), constants.RoleAdmin),
	)
	details.AdminRoutes(admin, db)
}
