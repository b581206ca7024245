// file: internals/features/scheduling/schedule/service/validate.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	employeeModel "migym_backend/internals/features/employees/model"
	facilityModel "migym_backend/internals/features/facilities/model"
	m "migym_backend/internals/features/scheduling/schedule/model"
)

var (
	ErrTimeInverted        = errors.New("la hora de inicio debe ser anterior a la de fin")
	ErrRangeInverted       = errors.New("valid_from debe ser anterior o igual a valid_until")
	ErrTrainerNotAssigned  = errors.New("el entrenador no está asignado a ese espacio")
	ErrTrainerSiteMismatch = errors.New("el entrenador pertenece a otra sede")
	ErrBadClock            = errors.New("hora inválida, se espera formato HH:MM")
	ErrBlockScopeMissing   = errors.New("el bloqueo necesita un entrenador o un espacio")
	ErrBlockRangeInverted  = errors.New("el fin del bloqueo debe ser posterior al inicio")
)

// ParseClock valida un reloj "HH:MM" y lo devuelve como minutos desde
// medianoche.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateTimes cubre las invariantes puras del horario, sin tocar la base.
func ValidateTimes(startClock, endClock string, validFrom, validUntil time.Time) error {
	start, err := ParseClock(startClock)
	if err != nil {
		return err
	}
	end, err := ParseClock(endClock)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrTimeInverted
	}
	if validFrom.After(validUntil) {
		return ErrRangeInverted
	}
	return nil
}

// ValidateSchedule aplica todas las invariantes de alta/edición de un
// horario: horas y rango coherentes, entrenador asignado al espacio y
// entrenador de la misma sede que el espacio.
func ValidateSchedule(ctx context.Context, db *gorm.DB, s *m.ScheduleModel) error {
	if err := ValidateTimes(s.ScheduleStartTime, s.ScheduleEndTime, s.ScheduleValidFrom, s.ScheduleValidUntil); err != nil {
		return err
	}

	var assignments int64
	if err := db.WithContext(ctx).
		Model(&facilityModel.TrainerRoomAssignmentModel{}).
		Where("trainer_room_trainer_id = ? AND trainer_room_room_id = ?", s.ScheduleTrainerID, s.ScheduleRoomID).
		Count(&assignments).Error; err != nil {
		return err
	}
	if assignments == 0 {
		return ErrTrainerNotAssigned
	}

	var room facilityModel.RoomModel
	if err := db.WithContext(ctx).Where("room_id = ?", s.ScheduleRoomID).First(&room).Error; err != nil {
		return err
	}
	var trainer employeeModel.TrainerModel
	if err := db.WithContext(ctx).Preload("Employee").
		Where("trainer_id = ?", s.ScheduleTrainerID).First(&trainer).Error; err != nil {
		return err
	}
	if trainer.Employee == nil || trainer.Employee.EmployeeSiteID != room.RoomSiteID {
		return ErrTrainerSiteMismatch
	}
	return nil
}

// ValidateBlock exige una ventana coherente y al menos un alcance
// (entrenador o espacio).
func ValidateBlock(b *m.ScheduleBlockModel) error {
	if b.ScheduleBlockTrainerID == nil && b.ScheduleBlockRoomID == nil {
		return ErrBlockScopeMissing
	}
	if !b.ScheduleBlockEndsAt.After(b.ScheduleBlockStartsAt) {
		return ErrBlockRangeInverted
	}
	return nil
}
