// file: internals/features/scheduling/reservation/service/reservation_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	facilityModel "migym_backend/internals/features/facilities/model"
	membershipService "migym_backend/internals/features/memberships/service"
	m "migym_backend/internals/features/scheduling/reservation/model"
	scheduleModel "migym_backend/internals/features/scheduling/schedule/model"
	sessionModel "migym_backend/internals/features/scheduling/session/model"
)

var (
	ErrSessionNotReservable = errors.New("la sesión no admite reservas en su estado actual")
	ErrSessionInPast        = errors.New("la sesión ya pasó")
	ErrSessionFull          = errors.New("la sesión está llena")
	ErrNoMembership         = errors.New("el cliente no tiene una suscripción vigente para esa fecha")
	ErrNotConfirmed         = errors.New("la reserva no está confirmada")
	ErrSessionNotCompleted  = errors.New("la asistencia se marca sobre una sesión finalizada o en curso")
)

// ValidateReservable decide si la sesión admite reservas nuevas: tiene que
// estar programada, colgar de un horario activo y no haber pasado ya.
// Requiere Schedule precargado.
func ValidateReservable(session *sessionModel.ClassSessionModel, now time.Time) error {
	if session.ClassSessionStatus != sessionModel.SessionScheduled {
		return ErrSessionNotReservable
	}
	if session.Schedule == nil || session.Schedule.ScheduleStatus != scheduleModel.ScheduleActive {
		return ErrSessionNotReservable
	}
	today := now.Truncate(24 * time.Hour)
	if session.ClassSessionDate.Truncate(24 * time.Hour).Before(today) {
		return ErrSessionInPast
	}
	return nil
}

// Reserve confirma un lugar del cliente en la sesión. El chequeo de cupo y
// el alta corren dentro de una transacción con la sesión bloqueada
// (SELECT ... FOR UPDATE), así dos reservas simultáneas sobre el último
// lugar no pueden colarse ambas. La suscripción del cliente tiene que cubrir
// la sede del espacio efectivo de la sesión en esa fecha.
//
// Es idempotente: si ya existe una reserva confirmada devuelve esa misma,
// y una cancelada previa se reactiva en lugar de duplicar la fila.
func Reserve(ctx context.Context, db *gorm.DB, sessionID, clientID uuid.UUID, now time.Time) (*m.ClassReservationModel, error) {
	var reservation *m.ClassReservationModel

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session sessionModel.ClassSessionModel
		if er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("class_session_id = ?", sessionID).
			First(&session).Error; er != nil {
			return er
		}
		// el lock no cubre preloads, el horario se carga aparte
		var schedule scheduleModel.ScheduleModel
		if er := tx.Where("schedule_id = ?", session.ClassSessionScheduleID).First(&schedule).Error; er != nil {
			return er
		}
		session.Schedule = &schedule

		if er := ValidateReservable(&session, now); er != nil {
			return er
		}

		var existing m.ClassReservationModel
		er := tx.Where("class_reservation_session_id = ? AND class_reservation_client_id = ?", sessionID, clientID).
			First(&existing).Error
		reactivate := false
		switch {
		case er == nil && existing.ClassReservationStatus == m.ReservationConfirmed:
			reservation = &existing
			return nil
		case er == nil && existing.ClassReservationStatus == m.ReservationCancelled:
			reactivate = true
		case er == nil:
			// asistio / no_asistio: la sesión ya se resolvió
			return ErrSessionNotReservable
		case !errors.Is(er, gorm.ErrRecordNotFound):
			return er
		}

		if !session.HasFreeSpots() {
			return ErrSessionFull
		}

		var room facilityModel.RoomModel
		if er2 := tx.Where("room_id = ?", session.EffectiveRoomID()).First(&room).Error; er2 != nil {
			return er2
		}
		if _, er2 := membershipService.HasValidSubscriptionForSite(ctx, tx, clientID, room.RoomSiteID, session.ClassSessionDate); er2 != nil {
			if errors.Is(er2, membershipService.ErrNoActiveSubscription) {
				return ErrNoMembership
			}
			return er2
		}

		if reactivate {
			existing.ClassReservationStatus = m.ReservationConfirmed
			existing.ClassReservationCancelledAt = nil
			if er2 := tx.Save(&existing).Error; er2 != nil {
				return er2
			}
			reservation = &existing
		} else {
			fresh := m.ClassReservationModel{
				ClassReservationSessionID: sessionID,
				ClassReservationClientID:  clientID,
				ClassReservationStatus:    m.ReservationConfirmed,
			}
			if er2 := tx.Create(&fresh).Error; er2 != nil {
				return er2
			}
			reservation = &fresh
		}

		return tx.Model(&sessionModel.ClassSessionModel{}).
			Where("class_session_id = ?", sessionID).
			UpdateColumn("class_session_reserved_count", gorm.Expr("class_session_reserved_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// Cancel libera el lugar. Cancelar dos veces no descuenta dos veces.
func Cancel(ctx context.Context, db *gorm.DB, reservationID uuid.UUID, now time.Time) (*m.ClassReservationModel, error) {
	var reservation m.ClassReservationModel

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("class_reservation_id = ?", reservationID).
			First(&reservation).Error; er != nil {
			return er
		}
		if reservation.ClassReservationStatus != m.ReservationConfirmed {
			return ErrNotConfirmed
		}

		reservation.ClassReservationStatus = m.ReservationCancelled
		reservation.ClassReservationCancelledAt = &now
		if er := tx.Save(&reservation).Error; er != nil {
			return er
		}
		return tx.Model(&sessionModel.ClassSessionModel{}).
			Where("class_session_id = ? AND class_session_reserved_count > 0", reservation.ClassReservationSessionID).
			UpdateColumn("class_session_reserved_count", gorm.Expr("class_session_reserved_count - 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// MarkAttendance registra asistio/no_asistio sobre una reserva confirmada
// de una sesión en curso o finalizada.
func MarkAttendance(ctx context.Context, db *gorm.DB, reservationID uuid.UUID, attended bool) (*m.ClassReservationModel, error) {
	var reservation m.ClassReservationModel
	if err := db.WithContext(ctx).
		Preload("Session").
		Where("class_reservation_id = ?", reservationID).
		First(&reservation).Error; err != nil {
		return nil, err
	}
	if reservation.ClassReservationStatus != m.ReservationConfirmed {
		return nil, ErrNotConfirmed
	}
	if reservation.Session == nil ||
		(reservation.Session.ClassSessionStatus != sessionModel.SessionInProgress &&
			reservation.Session.ClassSessionStatus != sessionModel.SessionCompleted) {
		return nil, ErrSessionNotCompleted
	}

	if attended {
		reservation.ClassReservationStatus = m.ReservationAttended
	} else {
		reservation.ClassReservationStatus = m.ReservationNoShow
	}
	if err := db.WithContext(ctx).Save(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelAllForSession cancela las reservas confirmadas de una sesión
// cancelada o suspendida. Corre dentro de la transacción del llamador.
func CancelAllForSession(tx *gorm.DB, sessionID uuid.UUID, now time.Time) error {
	if err := tx.Model(&m.ClassReservationModel{}).
		Where("class_reservation_session_id = ? AND class_reservation_status = ?", sessionID, m.ReservationConfirmed).
		Updates(map[string]interface{}{
			"class_reservation_status":       m.ReservationCancelled,
			"class_reservation_cancelled_at": now,
		}).Error; err != nil {
		return err
	}
	return tx.Model(&sessionModel.ClassSessionModel{}).
		Where("class_session_id = ?", sessionID).
		UpdateColumn("class_session_reserved_count", 0).Error
}
