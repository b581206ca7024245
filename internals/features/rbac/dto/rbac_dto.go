// file: internals/features/rbac/dto/rbac_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "migym_backend/internals/features/rbac/model"
)

type RoleCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=60"`
	Description *string `json:"description"`
}

func (r *RoleCreateRequest) Normalize() {
	r.Name = strings.ToLower(strings.TrimSpace(r.Name))
}

func (r RoleCreateRequest) ToModel() *m.RoleModel {
	return &m.RoleModel{
		RoleName:        r.Name,
		RoleDescription: r.Description,
	}
}

type RoleUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=60"`
	Description *string `json:"description"`
}

func (r RoleUpdateRequest) Apply(role *m.RoleModel) {
	if r.Name != nil {
		role.RoleName = strings.ToLower(strings.TrimSpace(*r.Name))
	}
	if r.Description != nil {
		role.RoleDescription = r.Description
	}
	role.RoleUpdatedAt = time.Now()
}

type PersonRoleRequest struct {
	PersonID uuid.UUID `json:"person_id" validate:"required"`
	RoleID   uuid.UUID `json:"role_id"   validate:"required"`
}

type RolePermissionRequest struct {
	RoleID       uuid.UUID `json:"role_id"       validate:"required"`
	PermissionID uuid.UUID `json:"permission_id" validate:"required"`
}
