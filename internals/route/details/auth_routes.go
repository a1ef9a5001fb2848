// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "presensiku_backend/internals/features/users/auth/controller"
	rateLimiter "presensiku_backend/internals/middlewares"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	base := app.Group("/api")

	// 🔓 Public
	base.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)

	// 🔒 Butuh token valid
	protected := base.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
}
