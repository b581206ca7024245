// file: internals/features/memberships/controller/subscription_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clientModel "migym_backend/internals/features/clients/model"
	d "migym_backend/internals/features/memberships/dto"
	m "migym_backend/internals/features/memberships/model"
	helper "migym_backend/internals/helpers"
)

type SubscriptionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubscription(db *gorm.DB, v *validator.Validate) *SubscriptionController {
	return &SubscriptionController{DB: db, Validate: v}
}

// Create da de alta una suscripción: la fecha de fin se deriva de la
// duración del plan, nunca la fija el cliente.
func (ctl *SubscriptionController) Create(c *fiber.Ctx) error {
	var req d.SubscriptionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var client clientModel.ClientModel
	if err := ctl.DB.Where("client_id = ?", req.ClientID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "El cliente no existe")
		}
		return helper.WritePGError(c, err)
	}

	var plan m.MembershipPlanModel
	if err := ctl.DB.Where("membership_plan_id = ?", req.PlanID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "El plan no existe")
		}
		return helper.WritePGError(c, err)
	}
	if !plan.MembershipPlanIsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "El plan está inactivo")
	}

	start := time.Now().Truncate(24 * time.Hour)
	if req.StartDate != nil {
		start = req.StartDate.Truncate(24 * time.Hour)
	}
	end := start.AddDate(0, 0, plan.MembershipPlanDurationDays)

	sub := m.SubscriptionModel{
		SubscriptionClientID:  client.ClientID,
		SubscriptionPlanID:    plan.MembershipPlanID,
		SubscriptionStartDate: start,
		SubscriptionEndDate:   end,
		SubscriptionStatus:    m.SubscriptionActive,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&sub).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Suscripción creada", sub)
}

func (ctl *SubscriptionController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	allowed := map[string]string{
		"created_at": "subscription_created_at",
		"end_date":   "subscription_end_date",
	}
	order, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.SubscriptionModel{})
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("subscription_client_id = ?", clientID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("subscription_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var subs []m.SubscriptionModel
	if err := q.Preload("Plan").Preload("Client.Person").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&subs).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", subs, &pg)
}

func (ctl *SubscriptionController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var sub m.SubscriptionModel
	if err := ctl.DB.Preload("Plan.Sites").Preload("Client.Person").
		Where("subscription_id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Suscripción no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", sub)
}

// ChangeStatus maneja suspensiones, reactivaciones y cancelaciones.
// Una suscripción cancelada es terminal.
func (ctl *SubscriptionController) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var sub m.SubscriptionModel
	if err := ctl.DB.Where("subscription_id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Suscripción no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	var req d.SubscriptionChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if sub.SubscriptionStatus == m.SubscriptionCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Una suscripción cancelada no puede cambiar de estado")
	}

	sub.SubscriptionStatus = req.Status
	if err := ctl.DB.Save(&sub).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Estado de suscripción actualizado", sub)
}
