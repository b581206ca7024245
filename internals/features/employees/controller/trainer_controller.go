// file: internals/features/employees/controller/trainer_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "migym_backend/internals/features/employees/dto"
	m "migym_backend/internals/features/employees/model"
	helper "migym_backend/internals/helpers"
)

type TrainerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTrainer(db *gorm.DB, v *validator.Validate) *TrainerController {
	return &TrainerController{DB: db, Validate: v}
}

// Create promociona un empleado existente a entrenador.
func (ctl *TrainerController) Create(c *fiber.Ctx) error {
	var req d.TrainerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var employee m.EmployeeModel
	if err := ctl.DB.Where("employee_id = ?", req.EmployeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "El empleado no existe")
		}
		return helper.WritePGError(c, err)
	}

	trainer := m.TrainerModel{
		TrainerEmployeeID:     employee.EmployeeID,
		TrainerSpecialty:      req.Specialty,
		TrainerCertifications: req.Certifications,
		TrainerIsActive:       true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&trainer).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Entrenador creado", trainer)
}

func (ctl *TrainerController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"created_at": "trainer_created_at",
		"specialty":  "trainer_specialty",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.TrainerModel{})
	if onlyActive := c.Query("active"); onlyActive == "true" {
		q = q.Where("trainer_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var trainers []m.TrainerModel
	if err := q.Preload("Employee.Person").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&trainers).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", trainers, &pg)
}

func (ctl *TrainerController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var trainer m.TrainerModel
	if err := ctl.DB.Preload("Employee.Person").Where("trainer_id = ?", id).First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Entrenador no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", trainer)
}

func (ctl *TrainerController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var trainer m.TrainerModel
	if err := ctl.DB.Where("trainer_id = ?", id).First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Entrenador no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.TrainerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&trainer)

	if err := ctl.DB.Save(&trainer).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Entrenador actualizado", trainer)
}

func (ctl *TrainerController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("trainer_id = ?", id).Delete(&m.TrainerModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entrenador no encontrado")
	}
	return helper.JsonDeleted(c)
}
