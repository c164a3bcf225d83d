package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "capacitajun_backend/internals/features/users/auth/controller"
	rateLimiter "capacitajun_backend/internals/middlewares"
	authMiddleware "capacitajun_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := router.Group("/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/logout", authController.Logout)

	// 🔒 Protected
	requireAuth := authMiddleware.AuthMiddleware(db)
	baseAuth.Get("/me", requireAuth, authController.Me)
	baseAuth.Post("/change-password", requireAuth, authController.ChangePassword)
}
