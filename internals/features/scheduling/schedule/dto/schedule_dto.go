// file: internals/features/scheduling/schedule/dto/schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "migym_backend/internals/features/scheduling/schedule/model"
)

type ScheduleCreateRequest struct {
	ActivityTypeID uuid.UUID `json:"activity_type_id" validate:"required"`
	TrainerID      uuid.UUID `json:"trainer_id"       validate:"required"`
	RoomID         uuid.UUID `json:"room_id"          validate:"required"`

	DayOfWeek int    `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime string `json:"start_time"  validate:"required,len=5"`
	EndTime   string `json:"end_time"    validate:"required,len=5"`

	ValidFrom  time.Time `json:"valid_from"  validate:"required"`
	ValidUntil time.Time `json:"valid_until" validate:"required"`

	Capacity int `json:"capacity" validate:"required,min=1"`
}

func (r ScheduleCreateRequest) ToModel() *m.ScheduleModel {
	return &m.ScheduleModel{
		ScheduleActivityTypeID: r.ActivityTypeID,
		ScheduleTrainerID:      r.TrainerID,
		ScheduleRoomID:         r.RoomID,
		ScheduleDayOfWeek:      r.DayOfWeek,
		ScheduleStartTime:      r.StartTime,
		ScheduleEndTime:        r.EndTime,
		ScheduleValidFrom:      r.ValidFrom,
		ScheduleValidUntil:     r.ValidUntil,
		ScheduleCapacity:       r.Capacity,
		ScheduleStatus:         m.ScheduleActive,
	}
}

type ScheduleUpdateRequest struct {
	TrainerID  *uuid.UUID        `json:"trainer_id"`
	RoomID     *uuid.UUID        `json:"room_id"`
	DayOfWeek  *int              `json:"day_of_week" validate:"omitempty,min=1,max=7"`
	StartTime  *string           `json:"start_time"  validate:"omitempty,len=5"`
	EndTime    *string           `json:"end_time"    validate:"omitempty,len=5"`
	ValidFrom  *time.Time        `json:"valid_from"`
	ValidUntil *time.Time        `json:"valid_until"`
	Capacity   *int              `json:"capacity" validate:"omitempty,min=1"`
	Status     *m.ScheduleStatus `json:"status"   validate:"omitempty,oneof=activo suspendido cancelado"`
}

func (r ScheduleUpdateRequest) Apply(s *m.ScheduleModel) {
	if r.TrainerID != nil {
		s.ScheduleTrainerID = *r.TrainerID
	}
	if r.RoomID != nil {
		s.ScheduleRoomID = *r.RoomID
	}
	if r.DayOfWeek != nil {
		s.ScheduleDayOfWeek = *r.DayOfWeek
	}
	if r.StartTime != nil {
		s.ScheduleStartTime = *r.StartTime
	}
	if r.EndTime != nil {
		s.ScheduleEndTime = *r.EndTime
	}
	if r.ValidFrom != nil {
		s.ScheduleValidFrom = *r.ValidFrom
	}
	if r.ValidUntil != nil {
		s.ScheduleValidUntil = *r.ValidUntil
	}
	if r.Capacity != nil {
		s.ScheduleCapacity = *r.Capacity
	}
	if r.Status != nil {
		s.ScheduleStatus = *r.Status
	}
	s.ScheduleUpdatedAt = time.Now()
}

/* ----------------- Bloqueos ----------------- */

type ScheduleBlockRequest struct {
	TrainerID *uuid.UUID `json:"trainer_id" validate:"required_without=RoomID"`
	RoomID    *uuid.UUID `json:"room_id"    validate:"required_without=TrainerID"`

	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at"   validate:"required"`

	Reason *string `json:"reason"`
}

func (r ScheduleBlockRequest) ToModel() *m.ScheduleBlockModel {
	return &m.ScheduleBlockModel{
		ScheduleBlockTrainerID: r.TrainerID,
		ScheduleBlockRoomID:    r.RoomID,
		ScheduleBlockStartsAt:  r.StartsAt,
		ScheduleBlockEndsAt:    r.EndsAt,
		ScheduleBlockReason:    r.Reason,
	}
}

/* ----------------- Generación ----------------- */

type GenerateSessionsRequest struct {
	From time.Time `json:"from" validate:"required"`
	To   time.Time `json:"to"   validate:"required"`
}
