// file: internals/features/scheduling/schedule/service/validate_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "migym_backend/internals/features/scheduling/schedule/model"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{"18:45", 1125, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"7:30", 0, true},
		{"07:60", 0, true},
		{"mediodía", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTimes(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("horario válido", func(t *testing.T) {
		assert.NoError(t, ValidateTimes("08:00", "09:00", from, until))
	})

	t.Run("inicio igual al fin", func(t *testing.T) {
		err := ValidateTimes("08:00", "08:00", from, until)
		assert.ErrorIs(t, err, ErrTimeInverted)
	})

	t.Run("inicio posterior al fin", func(t *testing.T) {
		err := ValidateTimes("10:00", "09:00", from, until)
		assert.ErrorIs(t, err, ErrTimeInverted)
	})

	t.Run("vigencia invertida", func(t *testing.T) {
		err := ValidateTimes("08:00", "09:00", until, from)
		assert.ErrorIs(t, err, ErrRangeInverted)
	})

	t.Run("vigencia de un solo día", func(t *testing.T) {
		assert.NoError(t, ValidateTimes("08:00", "09:00", from, from))
	})

	t.Run("reloj malformado gana al resto", func(t *testing.T) {
		err := ValidateTimes("08h00", "09:00", until, from)
		assert.ErrorIs(t, err, ErrBadClock)
	})
}

func TestValidateBlock(t *testing.T) {
	trainerID := uuid.New()
	roomID := uuid.New()
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 20, 0, 0, 0, time.UTC)

	t.Run("solo entrenador", func(t *testing.T) {
		err := ValidateBlock(&m.ScheduleBlockModel{
			ScheduleBlockTrainerID: &trainerID,
			ScheduleBlockStartsAt:  start,
			ScheduleBlockEndsAt:    end,
		})
		assert.NoError(t, err)
	})

	t.Run("solo espacio", func(t *testing.T) {
		err := ValidateBlock(&m.ScheduleBlockModel{
			ScheduleBlockRoomID:   &roomID,
			ScheduleBlockStartsAt: start,
			ScheduleBlockEndsAt:   end,
		})
		assert.NoError(t, err)
	})

	t.Run("sin entrenador ni espacio", func(t *testing.T) {
		err := ValidateBlock(&m.ScheduleBlockModel{
			ScheduleBlockStartsAt: start,
			ScheduleBlockEndsAt:   end,
		})
		assert.ErrorIs(t, err, ErrBlockScopeMissing)
	})

	t.Run("rango invertido", func(t *testing.T) {
		err := ValidateBlock(&m.ScheduleBlockModel{
			ScheduleBlockTrainerID: &trainerID,
			ScheduleBlockStartsAt:  end,
			ScheduleBlockEndsAt:    start,
		})
		assert.ErrorIs(t, err, ErrBlockRangeInverted)
	})

	t.Run("rango vacío", func(t *testing.T) {
		err := ValidateBlock(&m.ScheduleBlockModel{
			ScheduleBlockTrainerID: &trainerID,
			ScheduleBlockStartsAt:  start,
			ScheduleBlockEndsAt:    start,
		})
		assert.ErrorIs(t, err, ErrBlockRangeInverted)
	})
}

func TestBlockAppliesTo(t *testing.T) {
	trainerID := uuid.New()
	roomID := uuid.New()
	sched := &m.ScheduleModel{
		ScheduleTrainerID: trainerID,
		ScheduleRoomID:    roomID,
	}
	otherTrainer := uuid.New()
	otherRoom := uuid.New()

	tests := []struct {
		name    string
		trainer *uuid.UUID
		room    *uuid.UUID
		want    bool
	}{
		{"mismo entrenador", &trainerID, nil, true},
		{"mismo espacio", nil, &roomID, true},
		{"entrenador y espacio del horario", &trainerID, &roomID, true},
		{"otro entrenador", &otherTrainer, nil, false},
		{"otro espacio", nil, &otherRoom, false},
		{"otro entrenador pero mismo espacio", &otherTrainer, &roomID, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &m.ScheduleBlockModel{
				ScheduleBlockTrainerID: tt.trainer,
				ScheduleBlockRoomID:    tt.room,
			}
			assert.Equal(t, tt.want, b.AppliesTo(sched))
		})
	}
}

func TestBlockOverlaps(t *testing.T) {
	b := &m.ScheduleBlockModel{
		ScheduleBlockStartsAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		ScheduleBlockEndsAt:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"contenida", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), true},
		{"solapa el inicio", time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), true},
		{"solapa el fin", time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), true},
		{"termina justo al inicio", time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), false},
		{"empieza justo al fin", time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), false},
		{"totalmente antes", time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC), time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.start, tt.end))
		})
	}
}
