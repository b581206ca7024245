// file: internals/features/facilities/controller/site_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/facilities/dto"
	m "migym_backend/internals/features/facilities/model"
	helper "migym_backend/internals/helpers"
)

type SiteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSite(db *gorm.DB, v *validator.Validate) *SiteController {
	return &SiteController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *SiteController) Create(c *fiber.Ctx) error {
	var req d.SiteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	site := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(site).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Sede creada", site)
}

func (ctl *SiteController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"created_at": "site_created_at",
		"name":       "site_name",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.SiteModel{})
	if onlyActive := c.Query("active"); onlyActive == "true" {
		q = q.Where("site_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var sites []m.SiteModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&sites).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", sites, &pg)
}

func (ctl *SiteController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var site m.SiteModel
	if err := ctl.DB.Where("site_id = ?", id).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sede no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", site)
}

func (ctl *SiteController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var site m.SiteModel
	if err := ctl.DB.Where("site_id = ?", id).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sede no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	var req d.SiteUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&site)

	if err := ctl.DB.Save(&site).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Sede actualizada", site)
}

// ToggleActive invierte el flag activo de la sede.
func (ctl *SiteController) ToggleActive(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var site m.SiteModel
	if err := ctl.DB.Where("site_id = ?", id).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sede no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	site.SiteIsActive = !site.SiteIsActive
	if err := ctl.DB.Save(&site).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Estado de sede actualizado", site)
}

func (ctl *SiteController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var site m.SiteModel
	if err := ctl.DB.Where("site_id = ?", id).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sede no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if err := ctl.DB.Delete(&site).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c)
}
