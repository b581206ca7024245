// file: internals/features/scheduling/activity/controller/activity_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/scheduling/activity/dto"
	m "migym_backend/internals/features/scheduling/activity/model"
	helper "migym_backend/internals/helpers"
)

type ActivityTypeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ActivityTypeController {
	return &ActivityTypeController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *ActivityTypeController) Create(c *fiber.Ctx) error {
	var req d.ActivityTypeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	activity := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(activity).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Actividad creada", activity)
}

func (ctl *ActivityTypeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)
	allowed := map[string]string{
		"name":       "activity_type_name",
		"created_at": "activity_type_created_at",
	}
	order, err := p.SafeOrderClause(allowed, "name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.ActivityTypeModel{})
	if onlyActive := c.Query("active"); onlyActive == "true" {
		q = q.Where("activity_type_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var activities []m.ActivityTypeModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&activities).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", activities, &pg)
}

func (ctl *ActivityTypeController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var activity m.ActivityTypeModel
	if err := ctl.DB.Where("activity_type_id = ?", id).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Actividad no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", activity)
}

func (ctl *ActivityTypeController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var activity m.ActivityTypeModel
	if err := ctl.DB.Where("activity_type_id = ?", id).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Actividad no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	var req d.ActivityTypeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&activity)

	if err := ctl.DB.Save(&activity).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Actividad actualizada", activity)
}

func (ctl *ActivityTypeController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("activity_type_id = ?", id).Delete(&m.ActivityTypeModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Actividad no encontrada")
	}
	return helper.JsonDeleted(c)
}
