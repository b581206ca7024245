// file: internals/features/scheduling/reservation/controller/reservation_controller.go
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

	"migym_backend/internals/constants"
	clientModel "migym_backend/internals/features/clients/model"
	d "migym_backend/internals/features/scheduling/reservation/dto"
	m "migym_backend/internals/features/scheduling/reservation/model"
	"migym_backend/internals/features/scheduling/reservation/service"
	helper "migym_backend/internals/helpers"
)

type ReservationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ReservationController {
	return &ReservationController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// resolveClientID decide sobre qué cliente opera la petición: el staff puede
// pasar client_id, un cliente autenticado siempre opera sobre sí mismo.
func (ctl *ReservationController) resolveClientID(c *fiber.Ctx, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil && helper.HasRole(c, constants.StaffRoles...) {
		return *requested, nil
	}

	personID, err := helper.GetPersonIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	var client clientModel.ClientModel
	if err := ctl.DB.Where("client_person_id = ?", personID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, errors.New("la cuenta no está vinculada a un cliente")
		}
		return uuid.Nil, err
	}
	return client.ClientID, nil
}

func writeReservationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotReservable),
		errors.Is(err, service.ErrNotConfirmed),
		errors.Is(err, service.ErrSessionNotCompleted):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSessionFull),
		errors.Is(err, service.ErrSessionInPast),
		errors.Is(err, service.ErrNoMembership):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Reserva o sesión no encontrada")
	default:
		return helper.WritePGError(c, err)
	}
}

/* ========================= Operaciones ========================= */

func (ctl *ReservationController) Create(c *fiber.Ctx) error {
	var req d.ReservationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	clientID, err := ctl.resolveClientID(c, req.ClientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	reservation, err := service.Reserve(c.Context(), ctl.DB, req.SessionID, clientID, time.Now())
	if err != nil {
		return writeReservationError(c, err)
	}
	return helper.JsonCreated(c, "Reserva confirmada", reservation)
}

func (ctl *ReservationController) Cancel(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// un cliente solo cancela sus propias reservas
	if !helper.HasRole(c, constants.StaffRoles...) {
		clientID, er := ctl.resolveClientID(c, nil)
		if er != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, er.Error())
		}
		var owned int64
		if er := ctl.DB.Model(&m.ClassReservationModel{}).
			Where("class_reservation_id = ? AND class_reservation_client_id = ?", id, clientID).
			Count(&owned).Error; er != nil {
			return helper.WritePGError(c, er)
		}
		if owned == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Reserva no encontrada")
		}
	}

	reservation, err := service.Cancel(c.Context(), ctl.DB, id, time.Now())
	if err != nil {
		return writeReservationError(c, err)
	}
	return helper.JsonUpdated(c, "Reserva cancelada", reservation)
}

func (ctl *ReservationController) MarkAttendance(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req d.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	reservation, err := service.MarkAttendance(c.Context(), ctl.DB, id, req.Attended)
	if err != nil {
		return writeReservationError(c, err)
	}
	return helper.JsonUpdated(c, "Asistencia registrada", reservation)
}

/* ========================= Listados ========================= */

func (ctl *ReservationController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "reserved_at", "desc", helper.AdminOpts)
	allowed := map[string]string{
		"reserved_at": "class_reservation_reserved_at",
	}
	order, err := p.SafeOrderClause(allowed, "reserved_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.ClassReservationModel{})
	if sessionID := c.Query("session_id"); sessionID != "" {
		q = q.Where("class_reservation_session_id = ?", sessionID)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("class_reservation_client_id = ?", clientID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("class_reservation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var reservations []m.ClassReservationModel
	if err := q.Preload("Client.Person").Preload("Session.Schedule.ActivityType").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&reservations).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", reservations, &pg)
}

// Mine lista las reservas del cliente autenticado.
func (ctl *ReservationController) Mine(c *fiber.Ctx) error {
	clientID, err := ctl.resolveClientID(c, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var reservations []m.ClassReservationModel
	if err := ctl.DB.
		Preload("Session.Schedule.ActivityType").Preload("Session.Schedule.Room").
		Where("class_reservation_client_id = ?", clientID).
		Order("class_reservation_reserved_at DESC").
		Limit(100).
		Find(&reservations).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", reservations)
}
