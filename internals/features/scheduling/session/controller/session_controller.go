// file: internals/features/scheduling/session/controller/session_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reservationService "migym_backend/internals/features/scheduling/reservation/service"
	scheduleService "migym_backend/internals/features/scheduling/schedule/service"
	d "migym_backend/internals/features/scheduling/session/dto"
	m "migym_backend/internals/features/scheduling/session/model"
	helper "migym_backend/internals/helpers"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// transiciones permitidas del ciclo de vida de la sesión
var sessionTransitions = map[m.SessionStatus][]m.SessionStatus{
	m.SessionScheduled:  {m.SessionInProgress, m.SessionCancelled, m.SessionSuspended},
	m.SessionInProgress: {m.SessionCompleted},
	m.SessionSuspended:  {m.SessionScheduled, m.SessionCancelled},
}

func canTransition(from, to m.SessionStatus) bool {
	for _, allowed := range sessionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

/* ========================= List / Detail ========================= */

// List devuelve sesiones con sus valores efectivos resueltos. Filtra por
// horario, estado y rango de fechas (calendario semanal del front).
func (ctl *SessionController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "date", "asc", helper.AdminOpts)
	allowed := map[string]string{
		"date":       "class_session_date",
		"created_at": "class_session_created_at",
	}
	order, err := p.SafeOrderClause(allowed, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.ClassSessionModel{})
	if scheduleID := c.Query("schedule_id"); scheduleID != "" {
		q = q.Where("class_session_schedule_id = ?", scheduleID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("class_session_status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		if t, er := time.Parse("2006-01-02", from); er == nil {
			q = q.Where("class_session_date >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, er := time.Parse("2006-01-02", to); er == nil {
			q = q.Where("class_session_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var sessions []m.ClassSessionModel
	if err := q.Preload("Schedule.ActivityType").Preload("Schedule.Room").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&sessions).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	views := make([]d.SessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, d.NewSessionView(s))
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", views, &pg)
}

func (ctl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var session m.ClassSessionModel
	if err := ctl.DB.Preload("Schedule.ActivityType").Preload("Schedule.Room.Site").
		Where("class_session_id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesión no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.NewSessionView(session))
}

/* ========================= Overrides ========================= */

// PatchOverrides ajusta una sesión puntual sin tocar el horario. Solo una
// sesión programada admite cambios.
func (ctl *SessionController) PatchOverrides(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var session m.ClassSessionModel
	if err := ctl.DB.Preload("Schedule").Where("class_session_id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesión no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if session.ClassSessionStatus != m.SessionScheduled {
		return helper.JsonError(c, fiber.StatusConflict, "Solo una sesión programada admite cambios")
	}

	var req d.SessionOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Apply(&session)

	// las horas efectivas resultantes deben seguir siendo coherentes
	start, err := scheduleService.ParseClock(session.EffectiveStartTime())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	end, err := scheduleService.ParseClock(session.EffectiveEndTime())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if start >= end {
		return helper.JsonError(c, fiber.StatusBadRequest, scheduleService.ErrTimeInverted.Error())
	}
	// no se puede recortar el cupo por debajo de lo ya reservado
	if session.EffectiveCapacity() < session.ClassSessionReservedCount {
		return helper.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Hay %d reservas confirmadas, el cupo no puede ser menor", session.ClassSessionReservedCount))
	}

	if err := ctl.DB.Save(&session).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Sesión actualizada", d.NewSessionView(session))
}

/* ========================= Ciclo de vida ========================= */

// ChangeStatus aplica la transición pedida. Cancelar o suspender una sesión
// cancela también sus reservas confirmadas, en la misma transacción.
func (ctl *SessionController) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var session m.ClassSessionModel
	if err := ctl.DB.Where("class_session_id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesión no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	var req d.SessionChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if !canTransition(session.ClassSessionStatus, req.Status) {
		return helper.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Transición %s → %s no permitida", session.ClassSessionStatus, req.Status))
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		session.ClassSessionStatus = req.Status
		if er := tx.Save(&session).Error; er != nil {
			return er
		}
		if req.Status == m.SessionCancelled || req.Status == m.SessionSuspended {
			return reservationService.CancelAllForSession(tx, session.ClassSessionID, time.Now())
		}
		return nil
	}); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Estado de sesión actualizado", session)
}
