// file: internals/features/access/controller/access_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "migym_backend/internals/features/access/dto"
	m "migym_backend/internals/features/access/model"
	"migym_backend/internals/features/access/service"
	helper "migym_backend/internals/helpers"
)

type AccessController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AccessController {
	return &AccessController{DB: db, Validate: v}
}

// Check es el endpoint del torniquete: siempre responde 200 y el resultado
// va en el cuerpo, para que el lector pueda mostrar permitido/denegado.
func (ctl *AccessController) Check(c *fiber.Ctx) error {
	var req d.AccessCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	outcome, err := service.ValidateAccess(c.Context(), ctl.DB, req.SearchTerm, req.SiteID, time.Now())
	if err != nil {
		return helper.WritePGError(c, err)
	}

	resp := d.AccessCheckResponse{
		Result:       outcome.Result,
		Reason:       outcome.Reason,
		Client:       outcome.Client,
		Subscription: outcome.Subscription,
	}
	msg := "Acceso permitido ✅"
	if outcome.Result == m.AccessDenied {
		msg = "Acceso denegado"
	}
	return helper.JsonOK(c, msg, resp)
}

// Logs lista la bitácora con filtros por sede, resultado y rango de fechas.
func (ctl *AccessController) Logs(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "at", "desc", helper.AdminOpts)
	allowed := map[string]string{
		"at": "access_log_at",
	}
	order, err := p.SafeOrderClause(allowed, "at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.AccessLogModel{})
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("access_log_site_id = ?", siteID)
	}
	if result := c.Query("result"); result != "" {
		q = q.Where("access_log_result = ?", result)
	}
	if from := c.Query("from"); from != "" {
		if t, er := time.Parse("2006-01-02", from); er == nil {
			q = q.Where("access_log_at >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, er := time.Parse("2006-01-02", to); er == nil {
			q = q.Where("access_log_at < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var logs []m.AccessLogModel
	if err := q.Preload("Client.Person").Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&logs).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", logs, &pg)
}
