// file: internals/features/maintenance/controller/maintenance_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	inventoryModel "migym_backend/internals/features/inventory/model"
	d "migym_backend/internals/features/maintenance/dto"
	m "migym_backend/internals/features/maintenance/model"
	"migym_backend/internals/features/maintenance/service"
	helper "migym_backend/internals/helpers"
)

type MaintenanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *MaintenanceController {
	return &MaintenanceController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotPlanned),
		errors.Is(err, service.ErrNotInProgress),
		errors.Is(err, service.ErrAssetBusy),
		errors.Is(err, service.ErrAssetRetired):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Orden no encontrada")
	default:
		return helper.WritePGError(c, err)
	}
}

func (ctl *MaintenanceController) Create(c *fiber.Ctx) error {
	var req d.MaintenanceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var asset inventoryModel.AssetModel
	if err := ctl.DB.Where("asset_id = ?", req.AssetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "El activo no existe")
		}
		return helper.WritePGError(c, err)
	}
	if asset.AssetStatus == inventoryModel.AssetRetired {
		return helper.JsonError(c, fiber.StatusConflict, service.ErrAssetRetired.Error())
	}

	order := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(order).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Orden de mantenimiento creada", order)
}

func (ctl *MaintenanceController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	allowed := map[string]string{
		"created_at":    "maintenance_created_at",
		"scheduled_for": "maintenance_scheduled_for",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.MaintenanceModel{})
	if assetID := c.Query("asset_id"); assetID != "" {
		q = q.Where("maintenance_asset_id = ?", assetID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("maintenance_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var orders []m.MaintenanceModel
	if err := q.Preload("Asset").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&orders).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", orders, &pg)
}

func (ctl *MaintenanceController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var order m.MaintenanceModel
	if err := ctl.DB.Preload("Asset").Where("maintenance_id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Orden no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", order)
}

func (ctl *MaintenanceController) Start(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	order, err := service.Start(c.Context(), ctl.DB, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Mantenimiento iniciado", order)
}

func (ctl *MaintenanceController) Complete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req d.MaintenanceCompleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	order, err := service.Complete(c.Context(), ctl.DB, id, strings.TrimSpace(req.Resolution), req.Cost, req.AssetOperational)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Mantenimiento completado", order)
}

func (ctl *MaintenanceController) Abort(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	order, err := service.Abort(c.Context(), ctl.DB, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Mantenimiento abortado", order)
}
