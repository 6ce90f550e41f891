package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "tokobuku_backend/internals/features/users/auth/controller"
	"tokobuku_backend/internals/middlewares"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint publik (register/login/refresh) + yang butuh token.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")

	// 🌐 Public
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	// 🔐 Perlu token aktif
	protected := auth.Group("/", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Put("/change-password", ctrl.ChangePassword)
	protected.Get("/me", ctrl.Me)
}
