package auth

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
)

// RequirePermission gates a route on one (module, action) pair from the
// closed permission sets. super_admin bypasses the matrix.
func RequirePermission(module constants.Module, action constants.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromToken(c) == constants.RoleSuperAdmin {
			return c.Next()
		}
		if helper.GetPermissionsFromToken(c).Can(module, action) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden,
			"You do not have permission to "+string(action)+" "+string(module))
	}
}

// RequireRole gates a route on an explicit role list.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[helper.GetRoleFromToken(c)]; ok {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
	}
}
