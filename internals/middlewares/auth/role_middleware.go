// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"migym_backend/internals/constants"
	authzService "migym_backend/internals/features/rbac/service"
)

func authzFromLocals(c *fiber.Ctx) *authzService.AuthzContext {
	authz, _ := c.Locals("authz").(*authzService.AuthzContext)
	return authz
}

// RequireRoles exige al menos uno de los roles indicados. Lee el contexto
// precalculado por AuthMiddleware; no toca la DB.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := authzFromLocals(c)
		if authz == nil || !authz.HasRole(roles...) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStaff(feature))
		}
		return c.Next()
	}
}

// RequirePermission exige un código de permiso concreto.
func RequirePermission(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := authzFromLocals(c)
		if authz == nil || !authz.HasPermission(code) {
			return fiber.NewError(fiber.StatusForbidden, constants.PermissionError(code))
		}
		return c.Next()
	}
}
