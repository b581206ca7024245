// file: internals/features/rbac/model/rbac_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Roles & permisos
========================= */

type RoleModel struct {
	RoleID          uuid.UUID      `json:"role_id" gorm:"column:role_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RoleName        string         `json:"role_name" gorm:"column:role_name;type:varchar(60);not null;uniqueIndex:uq_roles_name"`
	RoleDescription *string        `json:"role_description" gorm:"column:role_description;type:text"`
	RoleCreatedAt   time.Time      `json:"role_created_at" gorm:"column:role_created_at;autoCreateTime"`
	RoleUpdatedAt   time.Time      `json:"role_updated_at" gorm:"column:role_updated_at;autoUpdateTime"`
	RoleDeletedAt   gorm.DeletedAt `json:"role_deleted_at" gorm:"column:role_deleted_at;index"`
}

func (RoleModel) TableName() string { return "roles" }

type PermissionModel struct {
	PermissionID          uuid.UUID      `json:"permission_id" gorm:"column:permission_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PermissionCode        string         `json:"permission_code" gorm:"column:permission_code;type:varchar(80);not null;uniqueIndex:uq_permissions_code"`
	PermissionDescription *string        `json:"permission_description" gorm:"column:permission_description;type:text"`
	PermissionCreatedAt   time.Time      `json:"permission_created_at" gorm:"column:permission_created_at;autoCreateTime"`
	PermissionDeletedAt   gorm.DeletedAt `json:"permission_deleted_at" gorm:"column:permission_deleted_at;index"`
}

func (PermissionModel) TableName() string { return "permissions" }

/* =========================
   Tablas de unión
========================= */

type PersonRoleModel struct {
	PersonRoleID       uuid.UUID `json:"person_role_id" gorm:"column:person_role_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonRolePersonID uuid.UUID `json:"person_role_person_id" gorm:"column:person_role_person_id;type:uuid;not null;uniqueIndex:uq_person_roles,priority:1"`
	PersonRoleRoleID   uuid.UUID `json:"person_role_role_id" gorm:"column:person_role_role_id;type:uuid;not null;uniqueIndex:uq_person_roles,priority:2"`

	Role RoleModel `json:"role,omitempty" gorm:"foreignKey:PersonRoleRoleID;references:RoleID;constraint:OnDelete:CASCADE"`

	PersonRoleCreatedAt time.Time `json:"person_role_created_at" gorm:"column:person_role_created_at;autoCreateTime"`
}

func (PersonRoleModel) TableName() string { return "person_roles" }

type RolePermissionModel struct {
	RolePermissionID           uuid.UUID `json:"role_permission_id" gorm:"column:role_permission_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RolePermissionRoleID       uuid.UUID `json:"role_permission_role_id" gorm:"column:role_permission_role_id;type:uuid;not null;uniqueIndex:uq_role_permissions,priority:1"`
	RolePermissionPermissionID uuid.UUID `json:"role_permission_permission_id" gorm:"column:role_permission_permission_id;type:uuid;not null;uniqueIndex:uq_role_permissions,priority:2"`

	Permission PermissionModel `json:"permission,omitempty" gorm:"foreignKey:RolePermissionPermissionID;references:PermissionID;constraint:OnDelete:CASCADE"`

	RolePermissionCreatedAt time.Time `json:"role_permission_created_at" gorm:"column:role_permission_created_at;autoCreateTime"`
}

func (RolePermissionModel) TableName() string { return "role_permissions" }
