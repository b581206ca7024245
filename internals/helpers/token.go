// file: internals/helpers/token.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Accessors sobre los claims que el middleware de auth dejó en Locals.

var ErrNoUserInContext = errors.New("user_id no presente en el contexto")

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, ErrNoUserInContext
	}
	return uuid.Parse(raw)
}

func GetPersonIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("person_id").(string)
	if raw == "" {
		return uuid.Nil, errors.New("person_id no presente en el contexto")
	}
	return uuid.Parse(raw)
}

// GetRolesFromContext devuelve los roles precargados por el middleware.
func GetRolesFromContext(c *fiber.Ctx) []string {
	roles, _ := c.Locals("roles").([]string)
	return roles
}

// GetPermissionsFromContext devuelve los códigos de permiso precargados.
func GetPermissionsFromContext(c *fiber.Ctx) map[string]struct{} {
	perms, _ := c.Locals("permissions").(map[string]struct{})
	return perms
}

func HasRole(c *fiber.Ctx, wanted ...string) bool {
	roles := GetRolesFromContext(c)
	for _, r := range roles {
		for _, w := range wanted {
			if r == w {
				return true
			}
		}
	}
	return false
}

func HasPermission(c *fiber.Ctx, code string) bool {
	perms := GetPermissionsFromContext(c)
	if perms == nil {
		return false
	}
	_, ok := perms[code]
	return ok
}
