// file: internals/features/facilities/controller/room_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "migym_backend/internals/features/facilities/dto"
	m "migym_backend/internals/features/facilities/model"
	helper "migym_backend/internals/helpers"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoom(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req d.RoomCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// la sede debe existir y estar activa
	var site m.SiteModel
	if err := ctl.DB.Where("site_id = ?", req.RoomSiteID).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "La sede no existe")
		}
		return helper.WritePGError(c, err)
	}

	room := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(room).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Espacio creado", room)
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"created_at": "room_created_at",
		"name":       "room_name",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.RoomModel{})
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("room_site_id = ?", siteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var rooms []m.RoomModel
	if err := q.Preload("Site").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rooms).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", rooms, &pg)
}

func (ctl *RoomController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var room m.RoomModel
	if err := ctl.DB.Where("room_id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Espacio no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.RoomUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&room)

	if err := ctl.DB.Save(&room).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Espacio actualizado", room)
}

func (ctl *RoomController) ToggleActive(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var room m.RoomModel
	if err := ctl.DB.Where("room_id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Espacio no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	room.RoomIsActive = !room.RoomIsActive
	if err := ctl.DB.Save(&room).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Estado de espacio actualizado", room)
}

func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("room_id = ?", id).Delete(&m.RoomModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Espacio no encontrado")
	}
	return helper.JsonDeleted(c)
}

/* =========================
   Asignaciones entrenador ↔ espacio
========================= */

func (ctl *RoomController) AssignTrainer(c *fiber.Ctx) error {
	var req d.TrainerRoomAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	assignment := m.TrainerRoomAssignmentModel{
		TrainerRoomTrainerID: req.TrainerID,
		TrainerRoomRoomID:    req.RoomID,
	}
	if err := ctl.DB.Create(&assignment).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Entrenador asignado al espacio", assignment)
}

func (ctl *RoomController) UnassignTrainer(c *fiber.Ctx) error {
	var req d.TrainerRoomAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.
		Where("trainer_room_trainer_id = ? AND trainer_room_room_id = ?", req.TrainerID, req.RoomID).
		Delete(&m.TrainerRoomAssignmentModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asignación no encontrada")
	}
	return helper.JsonDeleted(c)
}
