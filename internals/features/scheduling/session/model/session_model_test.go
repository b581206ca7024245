// file: internals/features/scheduling/session/model/session_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	scheduleModel "migym_backend/internals/features/scheduling/schedule/model"
)

func baseSchedule() *scheduleModel.ScheduleModel {
	return &scheduleModel.ScheduleModel{
		ScheduleTrainerID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		ScheduleRoomID:    uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		ScheduleStartTime: "08:00",
		ScheduleEndTime:   "09:00",
		ScheduleCapacity:  20,
	}
}

func TestEffectiveValuesInheritFromSchedule(t *testing.T) {
	s := &ClassSessionModel{Schedule: baseSchedule()}

	assert.Equal(t, s.Schedule.ScheduleTrainerID, s.EffectiveTrainerID())
	assert.Equal(t, s.Schedule.ScheduleRoomID, s.EffectiveRoomID())
	assert.Equal(t, "08:00", s.EffectiveStartTime())
	assert.Equal(t, "09:00", s.EffectiveEndTime())
	assert.Equal(t, 20, s.EffectiveCapacity())
}

func TestEffectiveValuesOverrideWins(t *testing.T) {
	otherTrainer := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	otherRoom := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	start := "10:00"
	end := "11:30"
	cap := 8

	s := &ClassSessionModel{
		Schedule:                      baseSchedule(),
		ClassSessionOverrideTrainerID: &otherTrainer,
		ClassSessionOverrideRoomID:    &otherRoom,
		ClassSessionOverrideStartTime: &start,
		ClassSessionOverrideEndTime:   &end,
		ClassSessionOverrideCapacity:  &cap,
	}

	assert.Equal(t, otherTrainer, s.EffectiveTrainerID())
	assert.Equal(t, otherRoom, s.EffectiveRoomID())
	assert.Equal(t, "10:00", s.EffectiveStartTime())
	assert.Equal(t, "11:30", s.EffectiveEndTime())
	assert.Equal(t, 8, s.EffectiveCapacity())
}

func TestEffectivePartialOverride(t *testing.T) {
	cap := 5
	s := &ClassSessionModel{
		Schedule:                     baseSchedule(),
		ClassSessionOverrideCapacity: &cap,
	}

	// solo la capacidad cambia, el resto hereda del horario
	assert.Equal(t, 5, s.EffectiveCapacity())
	assert.Equal(t, s.Schedule.ScheduleTrainerID, s.EffectiveTrainerID())
	assert.Equal(t, "08:00", s.EffectiveStartTime())
}

func TestEffectiveWithoutSchedule(t *testing.T) {
	s := &ClassSessionModel{}
	assert.Equal(t, uuid.Nil, s.EffectiveTrainerID())
	assert.Equal(t, uuid.Nil, s.EffectiveRoomID())
	assert.Equal(t, "", s.EffectiveStartTime())
	assert.Equal(t, 0, s.EffectiveCapacity())
}

func TestHasFreeSpots(t *testing.T) {
	tests := []struct {
		name     string
		reserved int
		override *int
		want     bool
	}{
		{"sesión vacía", 0, nil, true},
		{"una plaza libre", 19, nil, true},
		{"capacidad llena", 20, nil, false},
		{"sobre capacidad tras reducir override", 10, intPtr(8), false},
		{"override amplía la capacidad", 20, intPtr(25), true},
		{"capacidad cero nunca admite", 0, intPtr(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ClassSessionModel{
				Schedule:                     baseSchedule(),
				ClassSessionReservedCount:    tt.reserved,
				ClassSessionOverrideCapacity: tt.override,
			}
			assert.Equal(t, tt.want, s.HasFreeSpots())
		})
	}
}

func intPtr(n int) *int { return &n }
