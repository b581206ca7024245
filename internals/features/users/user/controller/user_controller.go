// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/users/user/dto"
	m "migym_backend/internals/features/users/user/model"
	helper "migym_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= List ========================= */

func (ctl *UserController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	allowed := map[string]string{
		"created_at": "user_created_at",
		"name":       "user_name",
		"email":      "user_email",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var users []m.UserModel
	if err := q.Preload("Person").
		Order(order).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&users).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", users, &pg)
}

/* ========================= Detail ========================= */

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var user m.UserModel
	if err := ctl.DB.Preload("Person").Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", user)
}

/* ========================= Patch ========================= */

func (ctl *UserController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var existing m.UserModel
	if err := ctl.DB.Where("user_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&existing)

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Usuario actualizado", existing)
}

/* ========================= Delete ========================= */

// Delete borra el usuario y, en la misma transacción, su persona; las filas
// de empleado/cliente caen por el ON DELETE CASCADE de person_id.
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var existing m.UserModel
	if err := ctl.DB.Where("user_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Unscoped().Delete(&existing).Error; er != nil {
			return er
		}
		if existing.UserPersonID != nil {
			if er := tx.Unscoped().
				Where("person_id = ?", *existing.UserPersonID).
				Delete(&m.PersonModel{}).Error; er != nil {
				return er
			}
		}
		return nil
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c)
}
