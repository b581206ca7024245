// file: internals/features/rbac/controller/rbac_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/rbac/dto"
	m "migym_backend/internals/features/rbac/model"
	helper "migym_backend/internals/helpers"
)

type RBACController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RBACController {
	return &RBACController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parámetro %s inválido", name)
	}
	return id, nil
}

/* ========================= Roles ========================= */

func (ctl *RBACController) CreateRole(c *fiber.Ctx) error {
	var req d.RoleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(role).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Rol creado", role)
}

func (ctl *RBACController) ListRoles(c *fiber.Ctx) error {
	var roles []m.RoleModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("role_name ASC").Find(&roles).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", roles)
}

func (ctl *RBACController) PatchRole(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var role m.RoleModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("role_id = ?", id).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rol no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.RoleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&role)
	if err := ctl.DB.WithContext(c.Context()).Save(&role).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Rol actualizado", role)
}

func (ctl *RBACController) DeleteRole(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("role_id = ?", id).Delete(&m.RoleModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Rol no encontrado")
	}
	return helper.JsonDeleted(c)
}

/* ========================= Permisos ========================= */

// ListPermissions expone el catálogo, los códigos se siembran desde constants.
func (ctl *RBACController) ListPermissions(c *fiber.Ctx) error {
	var perms []m.PermissionModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("permission_code ASC").Find(&perms).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", perms)
}

/* ========================= Persona ↔ rol ========================= */

func (ctl *RBACController) AssignRole(c *fiber.Ctx) error {
	var req d.PersonRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).Model(&m.PersonRoleModel{}).
		Where("person_role_person_id = ? AND person_role_role_id = ?", req.PersonID, req.RoleID).
		Count(&count).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if count > 0 {
		return helper.JsonOK(c, "La persona ya tiene ese rol", nil)
	}

	link := m.PersonRoleModel{
		PersonRolePersonID: req.PersonID,
		PersonRoleRoleID:   req.RoleID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&link).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Rol asignado", link)
}

func (ctl *RBACController) RevokeRole(c *fiber.Ctx) error {
	var req d.PersonRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("person_role_person_id = ? AND person_role_role_id = ?", req.PersonID, req.RoleID).
		Delete(&m.PersonRoleModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "La persona no tiene ese rol")
	}
	return helper.JsonDeleted(c)
}

/* ========================= Rol ↔ permiso ========================= */

func (ctl *RBACController) GrantPermission(c *fiber.Ctx) error {
	var req d.RolePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).Model(&m.RolePermissionModel{}).
		Where("role_permission_role_id = ? AND role_permission_permission_id = ?", req.RoleID, req.PermissionID).
		Count(&count).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if count > 0 {
		return helper.JsonOK(c, "El rol ya tiene ese permiso", nil)
	}

	link := m.RolePermissionModel{
		RolePermissionRoleID:       req.RoleID,
		RolePermissionPermissionID: req.PermissionID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&link).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Permiso otorgado", link)
}

func (ctl *RBACController) RevokePermission(c *fiber.Ctx) error {
	var req d.RolePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("role_permission_role_id = ? AND role_permission_permission_id = ?", req.RoleID, req.PermissionID).
		Delete(&m.RolePermissionModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "El rol no tiene ese permiso")
	}
	return helper.JsonDeleted(c)
}
