// file: internals/features/scheduling/session/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "migym_backend/internals/features/scheduling/schedule/model"
)

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "programada"
	SessionInProgress SessionStatus = "en_curso"
	SessionCompleted  SessionStatus = "finalizada"
	SessionCancelled  SessionStatus = "cancelada"
	SessionSuspended  SessionStatus = "suspendida"
)

/* =========================
   Model: ClassSessionModel (SesionClase)
   Una ocurrencia concreta de un horario en una fecha. Los campos Override*
   en nil heredan del horario; un valor presente pisa solo ese campo.
========================= */

type ClassSessionModel struct {
	ClassSessionID uuid.UUID `json:"class_session_id" gorm:"column:class_session_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ClassSessionScheduleID uuid.UUID                    `json:"class_session_schedule_id" gorm:"column:class_session_schedule_id;type:uuid;not null;uniqueIndex:uq_class_sessions,priority:1"`
	Schedule               *scheduleModel.ScheduleModel `json:"schedule,omitempty" gorm:"foreignKey:ClassSessionScheduleID;references:ScheduleID;constraint:OnDelete:CASCADE"`

	ClassSessionDate time.Time `json:"class_session_date" gorm:"column:class_session_date;type:date;not null;uniqueIndex:uq_class_sessions,priority:2;index"`

	ClassSessionOverrideTrainerID *uuid.UUID `json:"class_session_override_trainer_id" gorm:"column:class_session_override_trainer_id;type:uuid"`
	ClassSessionOverrideRoomID    *uuid.UUID `json:"class_session_override_room_id" gorm:"column:class_session_override_room_id;type:uuid"`
	ClassSessionOverrideStartTime *string    `json:"class_session_override_start_time" gorm:"column:class_session_override_start_time;type:varchar(5)"`
	ClassSessionOverrideEndTime   *string    `json:"class_session_override_end_time" gorm:"column:class_session_override_end_time;type:varchar(5)"`
	ClassSessionOverrideCapacity  *int       `json:"class_session_override_capacity" gorm:"column:class_session_override_capacity"`

	ClassSessionStatus SessionStatus `json:"class_session_status" gorm:"column:class_session_status;type:varchar(15);not null;default:'programada';index"`

	// contador denormalizado de reservas confirmadas
	ClassSessionReservedCount int `json:"class_session_reserved_count" gorm:"column:class_session_reserved_count;not null;default:0"`

	ClassSessionCreatedAt time.Time      `json:"class_session_created_at" gorm:"column:class_session_created_at;autoCreateTime"`
	ClassSessionUpdatedAt time.Time      `json:"class_session_updated_at" gorm:"column:class_session_updated_at;autoUpdateTime"`
	ClassSessionDeletedAt gorm.DeletedAt `json:"class_session_deleted_at" gorm:"column:class_session_deleted_at;index"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

/* =========================
   Valores efectivos (override ?? horario)
   Requieren Schedule precargado.
========================= */

func (s *ClassSessionModel) EffectiveTrainerID() uuid.UUID {
	if s.ClassSessionOverrideTrainerID != nil {
		return *s.ClassSessionOverrideTrainerID
	}
	if s.Schedule != nil {
		return s.Schedule.ScheduleTrainerID
	}
	return uuid.Nil
}

func (s *ClassSessionModel) EffectiveRoomID() uuid.UUID {
	if s.ClassSessionOverrideRoomID != nil {
		return *s.ClassSessionOverrideRoomID
	}
	if s.Schedule != nil {
		return s.Schedule.ScheduleRoomID
	}
	return uuid.Nil
}

func (s *ClassSessionModel) EffectiveStartTime() string {
	if s.ClassSessionOverrideStartTime != nil {
		return *s.ClassSessionOverrideStartTime
	}
	if s.Schedule != nil {
		return s.Schedule.ScheduleStartTime
	}
	return ""
}

func (s *ClassSessionModel) EffectiveEndTime() string {
	if s.ClassSessionOverrideEndTime != nil {
		return *s.ClassSessionOverrideEndTime
	}
	if s.Schedule != nil {
		return s.Schedule.ScheduleEndTime
	}
	return ""
}

func (s *ClassSessionModel) EffectiveCapacity() int {
	if s.ClassSessionOverrideCapacity != nil {
		return *s.ClassSessionOverrideCapacity
	}
	if s.Schedule != nil {
		return s.Schedule.ScheduleCapacity
	}
	return 0
}

// HasFreeSpots compara el contador de reservas contra la capacidad efectiva.
func (s *ClassSessionModel) HasFreeSpots() bool {
	return s.ClassSessionReservedCount < s.EffectiveCapacity()
}
