// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	rateLimiter "presensiku_backend/internals/middlewares"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
	routeDetails "presensiku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// Base: /api/u → cukup login, role apa pun
	log.Println("[INFO] Setting up PRIVATE group (/api/u)...")
	private := app.Group("/api/u",
		rateLimiter.GlobalRateLimiter(),
		authMiddleware.AuthMiddleware(db),
	)
	routeDetails.AttendanceUserRoutes(private, db)

	// ===================== ADMIN / PEMBINA =====================
	// Base: /api/a → login + role admin/pembina
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a",
		rateLimiter.GlobalRateLimiter(),
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(constants.AllowedRoles...),
	)
	routeDetails.MasterRoutes(admin, db)
	routeDetails.AttendanceAdminRoutes(admin, db)

	log.Println("[INFO] All routes registered")
}
