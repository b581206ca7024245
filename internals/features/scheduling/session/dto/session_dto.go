// file: internals/features/scheduling/session/dto/session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "migym_backend/internals/features/scheduling/session/model"
)

// SessionOverrideRequest pisa campos puntuales de una sesión. Un campo
// ausente conserva la herencia del horario; para volver a heredar se envía
// el flag clear correspondiente.
type SessionOverrideRequest struct {
	TrainerID *uuid.UUID `json:"trainer_id"`
	RoomID    *uuid.UUID `json:"room_id"`
	StartTime *string    `json:"start_time" validate:"omitempty,len=5"`
	EndTime   *string    `json:"end_time"   validate:"omitempty,len=5"`
	Capacity  *int       `json:"capacity"   validate:"omitempty,min=1"`

	ClearTrainer bool `json:"clear_trainer"`
	ClearRoom    bool `json:"clear_room"`
	ClearTimes   bool `json:"clear_times"`
	ClearCap     bool `json:"clear_capacity"`
}

func (r SessionOverrideRequest) Apply(s *m.ClassSessionModel) {
	if r.ClearTrainer {
		s.ClassSessionOverrideTrainerID = nil
	} else if r.TrainerID != nil {
		s.ClassSessionOverrideTrainerID = r.TrainerID
	}
	if r.ClearRoom {
		s.ClassSessionOverrideRoomID = nil
	} else if r.RoomID != nil {
		s.ClassSessionOverrideRoomID = r.RoomID
	}
	if r.ClearTimes {
		s.ClassSessionOverrideStartTime = nil
		s.ClassSessionOverrideEndTime = nil
	} else {
		if r.StartTime != nil {
			s.ClassSessionOverrideStartTime = r.StartTime
		}
		if r.EndTime != nil {
			s.ClassSessionOverrideEndTime = r.EndTime
		}
	}
	if r.ClearCap {
		s.ClassSessionOverrideCapacity = nil
	} else if r.Capacity != nil {
		s.ClassSessionOverrideCapacity = r.Capacity
	}
	s.ClassSessionUpdatedAt = time.Now()
}

type SessionChangeStatusRequest struct {
	Status m.SessionStatus `json:"status" validate:"required,oneof=programada en_curso finalizada cancelada suspendida"`
}

// SessionView es la proyección con valores efectivos ya resueltos.
type SessionView struct {
	Session           m.ClassSessionModel `json:"session"`
	EffectiveTrainer  uuid.UUID           `json:"effective_trainer_id"`
	EffectiveRoom     uuid.UUID           `json:"effective_room_id"`
	EffectiveStart    string              `json:"effective_start_time"`
	EffectiveEnd      string              `json:"effective_end_time"`
	EffectiveCapacity int                 `json:"effective_capacity"`
	FreeSpots         int                 `json:"free_spots"`
}

func NewSessionView(s m.ClassSessionModel) SessionView {
	free := s.EffectiveCapacity() - s.ClassSessionReservedCount
	if free < 0 {
		free = 0
	}
	return SessionView{
		Session:           s,
		EffectiveTrainer:  s.EffectiveTrainerID(),
		EffectiveRoom:     s.EffectiveRoomID(),
		EffectiveStart:    s.EffectiveStartTime(),
		EffectiveEnd:      s.EffectiveEndTime(),
		EffectiveCapacity: s.EffectiveCapacity(),
		FreeSpots:         free,
	}
}
