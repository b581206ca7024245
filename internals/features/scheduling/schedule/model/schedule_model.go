// file: internals/features/scheduling/schedule/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	employeeModel "migym_backend/internals/features/employees/model"
	facilityModel "migym_backend/internals/features/facilities/model"
	activityModel "migym_backend/internals/features/scheduling/activity/model"
)

type ScheduleStatus string

const (
	ScheduleActive    ScheduleStatus = "activo"
	ScheduleSuspended ScheduleStatus = "suspendido"
	ScheduleCancelled ScheduleStatus = "cancelado"
)

/* =========================
   Model: ScheduleModel (Horario semanal recurrente)
   Las horas se guardan como reloj "HH:MM" (hora local de la sede).
   DayOfWeek usa ISO: lunes=1 ... domingo=7.
========================= */

type ScheduleModel struct {
	ScheduleID uuid.UUID `json:"schedule_id" gorm:"column:schedule_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ScheduleActivityTypeID uuid.UUID                        `json:"schedule_activity_type_id" gorm:"column:schedule_activity_type_id;type:uuid;not null;index"`
	ActivityType           *activityModel.ActivityTypeModel `json:"activity_type,omitempty" gorm:"foreignKey:ScheduleActivityTypeID;references:ActivityTypeID"`

	ScheduleTrainerID uuid.UUID                   `json:"schedule_trainer_id" gorm:"column:schedule_trainer_id;type:uuid;not null;index"`
	Trainer           *employeeModel.TrainerModel `json:"trainer,omitempty" gorm:"foreignKey:ScheduleTrainerID;references:TrainerID"`

	ScheduleRoomID uuid.UUID                `json:"schedule_room_id" gorm:"column:schedule_room_id;type:uuid;not null;index"`
	Room           *facilityModel.RoomModel `json:"room,omitempty" gorm:"foreignKey:ScheduleRoomID;references:RoomID"`

	ScheduleDayOfWeek int    `json:"schedule_day_of_week" gorm:"column:schedule_day_of_week;not null"`
	ScheduleStartTime string `json:"schedule_start_time" gorm:"column:schedule_start_time;type:varchar(5);not null"`
	ScheduleEndTime   string `json:"schedule_end_time"   gorm:"column:schedule_end_time;type:varchar(5);not null"`

	ScheduleValidFrom  time.Time `json:"schedule_valid_from"  gorm:"column:schedule_valid_from;type:date;not null"`
	ScheduleValidUntil time.Time `json:"schedule_valid_until" gorm:"column:schedule_valid_until;type:date;not null"`

	ScheduleCapacity int            `json:"schedule_capacity" gorm:"column:schedule_capacity;not null"`
	ScheduleStatus   ScheduleStatus `json:"schedule_status" gorm:"column:schedule_status;type:varchar(12);not null;default:'activo';index"`

	ScheduleCreatedAt time.Time      `json:"schedule_created_at" gorm:"column:schedule_created_at;autoCreateTime"`
	ScheduleUpdatedAt time.Time      `json:"schedule_updated_at" gorm:"column:schedule_updated_at;autoUpdateTime"`
	ScheduleDeletedAt gorm.DeletedAt `json:"schedule_deleted_at" gorm:"column:schedule_deleted_at;index"`
}

func (ScheduleModel) TableName() string { return "schedules" }

/* =========================
   Bloqueos (feriados, mantenimiento del espacio, ausencia del entrenador)
   Una ventana de tiempo que suprime las ocurrencias de cualquier horario
   del entrenador y/o espacio alcanzado.
========================= */

type ScheduleBlockModel struct {
	ScheduleBlockID uuid.UUID `json:"schedule_block_id" gorm:"column:schedule_block_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// alcance: entrenador y/o espacio, al menos uno
	ScheduleBlockTrainerID *uuid.UUID `json:"schedule_block_trainer_id" gorm:"column:schedule_block_trainer_id;type:uuid;index"`
	ScheduleBlockRoomID    *uuid.UUID `json:"schedule_block_room_id" gorm:"column:schedule_block_room_id;type:uuid;index"`

	ScheduleBlockStartsAt time.Time `json:"schedule_block_starts_at" gorm:"column:schedule_block_starts_at;not null;index"`
	ScheduleBlockEndsAt   time.Time `json:"schedule_block_ends_at"   gorm:"column:schedule_block_ends_at;not null"`

	ScheduleBlockReason *string `json:"schedule_block_reason" gorm:"column:schedule_block_reason;type:text"`

	ScheduleBlockCreatedAt time.Time `json:"schedule_block_created_at" gorm:"column:schedule_block_created_at;autoCreateTime"`
}

func (ScheduleBlockModel) TableName() string { return "schedule_blocks" }

// AppliesTo indica si el bloqueo alcanza al horario por su entrenador o su
// espacio.
func (b *ScheduleBlockModel) AppliesTo(s *ScheduleModel) bool {
	if b.ScheduleBlockTrainerID != nil && *b.ScheduleBlockTrainerID == s.ScheduleTrainerID {
		return true
	}
	if b.ScheduleBlockRoomID != nil && *b.ScheduleBlockRoomID == s.ScheduleRoomID {
		return true
	}
	return false
}

// Overlaps compara la ventana del bloqueo contra un rango [start, end).
func (b *ScheduleBlockModel) Overlaps(start, end time.Time) bool {
	return b.ScheduleBlockStartsAt.Before(end) && b.ScheduleBlockEndsAt.After(start)
}
