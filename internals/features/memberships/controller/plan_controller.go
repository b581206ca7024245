// file: internals/features/memberships/controller/plan_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/memberships/dto"
	m "migym_backend/internals/features/memberships/model"
	helper "migym_backend/internals/helpers"
)

type PlanController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPlan(db *gorm.DB, v *validator.Validate) *PlanController {
	return &PlanController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func replacePlanSites(tx *gorm.DB, planID uuid.UUID, siteIDs []uuid.UUID) error {
	if err := tx.Where("membership_plan_site_plan_id = ?", planID).
		Delete(&m.MembershipPlanSiteModel{}).Error; err != nil {
		return err
	}
	for _, sid := range siteIDs {
		row := m.MembershipPlanSiteModel{
			MembershipPlanSitePlanID: planID,
			MembershipPlanSiteSiteID: sid,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (ctl *PlanController) Create(c *fiber.Ctx) error {
	var req d.PlanCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !req.AllSites && len(req.SiteIDs) == 0 {
		return helper.JsonFieldErrors(c, map[string][]string{
			"site_ids": {"un plan que no cubre todas las sedes necesita al menos una"},
		})
	}

	plan := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Create(plan).Error; er != nil {
			return er
		}
		if plan.MembershipPlanAllSites {
			return nil
		}
		return replacePlanSites(tx, plan.MembershipPlanID, req.SiteIDs)
	}); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Plan creado", plan)
}

func (ctl *PlanController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"created_at": "membership_plan_created_at",
		"name":       "membership_plan_name",
		"price":      "membership_plan_price",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.MembershipPlanModel{})
	if onlyActive := c.Query("active"); onlyActive == "true" {
		q = q.Where("membership_plan_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var plans []m.MembershipPlanModel
	if err := q.Preload("Sites").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&plans).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", plans, &pg)
}

func (ctl *PlanController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var plan m.MembershipPlanModel
	if err := ctl.DB.Preload("Sites").Where("membership_plan_id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", plan)
}

func (ctl *PlanController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var plan m.MembershipPlanModel
	if err := ctl.DB.Where("membership_plan_id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var req d.PlanUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&plan)

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Save(&plan).Error; er != nil {
			return er
		}
		if req.SiteIDs != nil && !plan.MembershipPlanAllSites {
			return replacePlanSites(tx, plan.MembershipPlanID, *req.SiteIDs)
		}
		return nil
	}); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Plan actualizado", plan)
}

func (ctl *PlanController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Where("membership_plan_id = ?", id).Delete(&m.MembershipPlanModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
	}
	return helper.JsonDeleted(c)
}
