// file: internals/features/scheduling/reservation/model/reservation_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	clientModel "migym_backend/internals/features/clients/model"
	sessionModel "migym_backend/internals/features/scheduling/session/model"
)

type ReservationStatus string

const (
	// pendiente queda reservado para flujos con aprobación; el alta por la
	// API confirma directo
	ReservationPending   ReservationStatus = "pendiente"
	ReservationConfirmed ReservationStatus = "confirmada"
	ReservationCancelled ReservationStatus = "cancelada"
	ReservationAttended  ReservationStatus = "asistio"
	ReservationNoShow    ReservationStatus = "no_asistio"
)

/* =========================
   Model: ClassReservationModel
   Una fila por (sesión, cliente): cancelar y volver a reservar reactiva
   la misma fila en vez de crear otra.
========================= */

type ClassReservationModel struct {
	ClassReservationID uuid.UUID `json:"class_reservation_id" gorm:"column:class_reservation_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ClassReservationSessionID uuid.UUID                       `json:"class_reservation_session_id" gorm:"column:class_reservation_session_id;type:uuid;not null;uniqueIndex:uq_class_reservations,priority:1"`
	Session                   *sessionModel.ClassSessionModel `json:"session,omitempty" gorm:"foreignKey:ClassReservationSessionID;references:ClassSessionID;constraint:OnDelete:CASCADE"`

	ClassReservationClientID uuid.UUID                `json:"class_reservation_client_id" gorm:"column:class_reservation_client_id;type:uuid;not null;uniqueIndex:uq_class_reservations,priority:2"`
	Client                   *clientModel.ClientModel `json:"client,omitempty" gorm:"foreignKey:ClassReservationClientID;references:ClientID;constraint:OnDelete:CASCADE"`

	ClassReservationStatus ReservationStatus `json:"class_reservation_status" gorm:"column:class_reservation_status;type:varchar(15);not null;default:'confirmada';index"`

	ClassReservationReservedAt  time.Time  `json:"class_reservation_reserved_at" gorm:"column:class_reservation_reserved_at;autoCreateTime"`
	ClassReservationCancelledAt *time.Time `json:"class_reservation_cancelled_at" gorm:"column:class_reservation_cancelled_at"`

	ClassReservationUpdatedAt time.Time `json:"class_reservation_updated_at" gorm:"column:class_reservation_updated_at;autoUpdateTime"`
}

func (ClassReservationModel) TableName() string { return "class_reservations" }
