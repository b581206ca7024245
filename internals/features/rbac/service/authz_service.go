// file: internals/features/rbac/service/authz_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthzContext es el contexto de autorización que el middleware arma UNA vez
// por request (roles + códigos de permiso), en lugar de repetir lookups
// ad-hoc en cada chequeo.
type AuthzContext struct {
	PersonID    uuid.UUID
	Roles       []string
	Permissions map[string]struct{}
}

func (a *AuthzContext) HasRole(wanted ...string) bool {
	for _, r := range a.Roles {
		for _, w := range wanted {
			if r == w {
				return true
			}
		}
	}
	return false
}

func (a *AuthzContext) HasPermission(code string) bool {
	_, ok := a.Permissions[code]
	return ok
}

// Load resuelve roles y permisos de una persona en dos queries con JOIN.
func Load(ctx context.Context, db *gorm.DB, personID uuid.UUID) (*AuthzContext, error) {
	out := &AuthzContext{
		PersonID:    personID,
		Permissions: map[string]struct{}{},
	}

	var roleNames []string
	if err := db.WithContext(ctx).
		Table("person_roles").
		Joins("JOIN roles ON roles.role_id = person_roles.person_role_role_id AND roles.role_deleted_at IS NULL").
		Where("person_roles.person_role_person_id = ?", personID).
		Pluck("roles.role_name", &roleNames).Error; err != nil {
		return nil, err
	}
	out.Roles = roleNames

	var permCodes []string
	if err := db.WithContext(ctx).
		Table("role_permissions").
		Joins("JOIN permissions ON permissions.permission_id = role_permissions.role_permission_permission_id AND permissions.permission_deleted_at IS NULL").
		Joins("JOIN person_roles ON person_roles.person_role_role_id = role_permissions.role_permission_role_id").
		Where("person_roles.person_role_person_id = ?", personID).
		Distinct().
		Pluck("permissions.permission_code", &permCodes).Error; err != nil {
		return nil, err
	}
	for _, code := range permCodes {
		out.Permissions[code] = struct{}{}
	}
	return out, nil
}
