// file: internals/features/inventory/controller/asset_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "migym_backend/internals/features/inventory/dto"
	m "migym_backend/internals/features/inventory/model"
	helper "migym_backend/internals/helpers"
)

var errInsufficientStock = errors.New("stock insuficiente")

func clauseLockForUpdate() clause.Expression {
	return clause.Locking{Strength: "UPDATE"}
}

type AssetController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAsset(db *gorm.DB, v *validator.Validate) *AssetController {
	return &AssetController{DB: db, Validate: v}
}

func (ctl *AssetController) Create(c *fiber.Ctx) error {
	var req d.AssetCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	asset := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(asset).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Activo registrado", asset)
}

func (ctl *AssetController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"created_at": "asset_created_at",
		"name":       "asset_name",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.AssetModel{})
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("asset_site_id = ?", siteID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("asset_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var assets []m.AssetModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&assets).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", assets, &pg)
}

func (ctl *AssetController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var asset m.AssetModel
	if err := ctl.DB.Where("asset_id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activo no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", asset)
}

func (ctl *AssetController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var asset m.AssetModel
	if err := ctl.DB.Where("asset_id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activo no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.AssetUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&asset)

	if err := ctl.DB.Save(&asset).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Activo actualizado", asset)
}

// Retire marca el activo como dado de baja; no se borra la fila para
// conservar el historial de mantenimientos.
func (ctl *AssetController) Retire(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var asset m.AssetModel
	if err := ctl.DB.Where("asset_id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activo no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	if asset.AssetStatus == m.AssetUnderMaintenance {
		return helper.JsonError(c, fiber.StatusConflict, "No se da de baja un activo con mantenimiento en curso")
	}
	asset.AssetStatus = m.AssetRetired
	if err := ctl.DB.Save(&asset).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Activo dado de baja", asset)
}

func (ctl *AssetController) UploadPhoto(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var asset m.AssetModel
	if err := ctl.DB.Where("asset_id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activo no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file es requerido")
	}
	data, name, err := helper.ConvertImageToWebP(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	relPath, err := helper.SaveBytes("assets", name, data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	old := asset.AssetPhotoPath
	asset.AssetPhotoPath = &relPath
	if err := ctl.DB.Save(&asset).Error; err != nil {
		helper.DeleteStoredFile(relPath)
		return helper.WritePGError(c, err)
	}
	if old != nil {
		helper.DeleteStoredFile(*old)
	}
	return helper.JsonUpdated(c, "Foto actualizada", asset)
}
