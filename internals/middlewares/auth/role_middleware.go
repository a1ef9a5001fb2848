package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "presensiku_backend/internals/helpers"
)

// RequireRoles menolak request bila role di locals tidak termasuk daftar.
func RequireRoles(allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromLocals(c)
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak untuk role Anda")
		}
		return c.Next()
	}
}
