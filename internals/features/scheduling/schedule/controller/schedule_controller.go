// file: internals/features/scheduling/schedule/controller/schedule_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/scheduling/schedule/dto"
	m "migym_backend/internals/features/scheduling/schedule/model"
	"migym_backend/internals/features/scheduling/schedule/service"
	helper "migym_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func writeValidationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTimeInverted),
		errors.Is(err, service.ErrRangeInverted),
		errors.Is(err, service.ErrBadClock),
		errors.Is(err, service.ErrBlockScopeMissing),
		errors.Is(err, service.ErrBlockRangeInverted):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTrainerNotAssigned),
		errors.Is(err, service.ErrTrainerSiteMismatch):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusBadRequest, "Entrenador o espacio inexistente")
	default:
		return helper.WritePGError(c, err)
	}
}

/* ========================= CRUD ========================= */

func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req d.ScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	schedule := req.ToModel()
	if err := service.ValidateSchedule(c.Context(), ctl.DB, schedule); err != nil {
		return writeValidationError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Create(schedule).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Horario creado", schedule)
}

func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"created_at": "schedule_created_at",
		"day":        "schedule_day_of_week",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.ScheduleModel{})
	if trainerID := c.Query("trainer_id"); trainerID != "" {
		q = q.Where("schedule_trainer_id = ?", trainerID)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("schedule_room_id = ?", roomID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("schedule_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var schedules []m.ScheduleModel
	if err := q.Preload("ActivityType").Preload("Room").Preload("Trainer.Employee.Person").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&schedules).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", schedules, &pg)
}

func (ctl *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var schedule m.ScheduleModel
	if err := ctl.DB.Preload("ActivityType").Preload("Room.Site").Preload("Trainer.Employee.Person").
		Where("schedule_id = ?", id).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", schedule)
}

func (ctl *ScheduleController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var schedule m.ScheduleModel
	if err := ctl.DB.Where("schedule_id = ?", id).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.ScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&schedule)

	// revalidar con los valores ya aplicados
	if err := service.ValidateSchedule(c.Context(), ctl.DB, &schedule); err != nil {
		return writeValidationError(c, err)
	}
	if err := ctl.DB.Save(&schedule).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Horario actualizado", schedule)
}

func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("schedule_id = ?", id).Delete(&m.ScheduleModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
	}
	return helper.JsonDeleted(c)
}

/* ========================= Bloqueos ========================= */

// AddBlock registra una ventana de bloqueo para un entrenador y/o espacio.
// Las ocurrencias de cualquier horario alcanzado que se solapen con la
// ventana quedan fuera de la generación de sesiones.
func (ctl *ScheduleController) AddBlock(c *fiber.Ctx) error {
	var req d.ScheduleBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	block := req.ToModel()
	if err := service.ValidateBlock(block); err != nil {
		return writeValidationError(c, err)
	}
	if err := ctl.DB.Create(block).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Bloqueo registrado", block)
}

func (ctl *ScheduleController) ListBlocks(c *fiber.Ctx) error {
	q := ctl.DB.Model(&m.ScheduleBlockModel{})
	if trainerID := c.Query("trainer_id"); trainerID != "" {
		q = q.Where("schedule_block_trainer_id = ?", trainerID)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("schedule_block_room_id = ?", roomID)
	}

	var blocks []m.ScheduleBlockModel
	if err := q.Order("schedule_block_starts_at ASC").Find(&blocks).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", blocks)
}

func (ctl *ScheduleController) RemoveBlock(c *fiber.Ctx) error {
	blockID, err := parseUUIDParam(c, "block_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("schedule_block_id = ?", blockID).Delete(&m.ScheduleBlockModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Bloqueo no encontrado")
	}
	return helper.JsonDeleted(c)
}

/* ========================= Generación ========================= */

// GenerateSessions materializa sesiones del horario en un rango de fechas.
func (ctl *ScheduleController) GenerateSessions(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var schedule m.ScheduleModel
	if err := ctl.DB.Where("schedule_id = ?", id).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	if schedule.ScheduleStatus != m.ScheduleActive {
		return helper.JsonError(c, fiber.StatusConflict, "Solo un horario activo genera sesiones")
	}

	var req d.GenerateSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.From.After(req.To) {
		return helper.JsonError(c, fiber.StatusBadRequest, "from debe ser anterior o igual a to")
	}

	created, err := service.GenerateSessions(c.Context(), ctl.DB, &schedule, req.From, req.To)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, fmt.Sprintf("Se generaron %d sesiones", created), fiber.Map{
		"created": created,
	})
}
