// file: internals/features/scheduling/schedule/service/generator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "migym_backend/internals/features/scheduling/schedule/model"
)

func day(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandOccurrences(t *testing.T) {
	// lunes 2 de marzo de 2026
	sched := &m.ScheduleModel{
		ScheduleDayOfWeek:  1,
		ScheduleValidFrom:  day(2026, 3, 1),
		ScheduleValidUntil: day(2026, 3, 31),
	}

	t.Run("todos los lunes del mes", func(t *testing.T) {
		got := ExpandOccurrences(sched, day(2026, 3, 1), day(2026, 3, 31))
		require.Len(t, got, 5)
		assert.Equal(t, day(2026, 3, 2), got[0])
		assert.Equal(t, day(2026, 3, 30), got[4])
		for _, d := range got {
			assert.Equal(t, time.Monday, d.Weekday())
		}
	})

	t.Run("recorta al inicio de la vigencia", func(t *testing.T) {
		got := ExpandOccurrences(sched, day(2026, 2, 1), day(2026, 3, 10))
		require.Len(t, got, 2)
		assert.Equal(t, day(2026, 3, 2), got[0])
		assert.Equal(t, day(2026, 3, 9), got[1])
	})

	t.Run("recorta al fin de la vigencia", func(t *testing.T) {
		got := ExpandOccurrences(sched, day(2026, 3, 25), day(2026, 5, 1))
		require.Len(t, got, 1)
		assert.Equal(t, day(2026, 3, 30), got[0])
	})

	t.Run("rango sin intersección", func(t *testing.T) {
		assert.Nil(t, ExpandOccurrences(sched, day(2026, 4, 1), day(2026, 4, 30)))
	})

	t.Run("rango corto sin el día buscado", func(t *testing.T) {
		// martes a domingo, ningún lunes
		assert.Nil(t, ExpandOccurrences(sched, day(2026, 3, 3), day(2026, 3, 8)))
	})

	t.Run("rango de un solo día que coincide", func(t *testing.T) {
		got := ExpandOccurrences(sched, day(2026, 3, 9), day(2026, 3, 9))
		require.Len(t, got, 1)
		assert.Equal(t, day(2026, 3, 9), got[0])
	})

	t.Run("domingo en convención ISO", func(t *testing.T) {
		sunday := &m.ScheduleModel{
			ScheduleDayOfWeek:  7,
			ScheduleValidFrom:  day(2026, 3, 1),
			ScheduleValidUntil: day(2026, 3, 31),
		}
		got := ExpandOccurrences(sunday, day(2026, 3, 1), day(2026, 3, 31))
		require.Len(t, got, 5)
		assert.Equal(t, day(2026, 3, 1), got[0])
		assert.Equal(t, time.Sunday, got[0].Weekday())
	})
}

func TestOccurrenceBlocked(t *testing.T) {
	trainerID := uuid.New()
	roomID := uuid.New()
	sched := &m.ScheduleModel{
		ScheduleTrainerID: trainerID,
		ScheduleRoomID:    roomID,
	}
	// ocurrencia: lunes 9 de marzo de 08:00 a 09:00
	occDate := day(2026, 3, 9)
	startMin, endMin := 8*60, 9*60

	t.Run("sin bloqueos", func(t *testing.T) {
		assert.False(t, OccurrenceBlocked(nil, sched, occDate, startMin, endMin))
	})

	t.Run("bloqueo del entrenador que solapa", func(t *testing.T) {
		blocks := []m.ScheduleBlockModel{{
			ScheduleBlockTrainerID: &trainerID,
			ScheduleBlockStartsAt:  time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC),
			ScheduleBlockEndsAt:    time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		}}
		assert.True(t, OccurrenceBlocked(blocks, sched, occDate, startMin, endMin))
	})

	t.Run("bloqueo del espacio de varios días", func(t *testing.T) {
		blocks := []m.ScheduleBlockModel{{
			ScheduleBlockRoomID:   &roomID,
			ScheduleBlockStartsAt: day(2026, 3, 8),
			ScheduleBlockEndsAt:   day(2026, 3, 11),
		}}
		assert.True(t, OccurrenceBlocked(blocks, sched, occDate, startMin, endMin))
	})

	t.Run("bloqueo de otro entrenador no alcanza", func(t *testing.T) {
		other := uuid.New()
		blocks := []m.ScheduleBlockModel{{
			ScheduleBlockTrainerID: &other,
			ScheduleBlockStartsAt:  day(2026, 3, 8),
			ScheduleBlockEndsAt:    day(2026, 3, 11),
		}}
		assert.False(t, OccurrenceBlocked(blocks, sched, occDate, startMin, endMin))
	})

	t.Run("bloqueo que termina antes de la ocurrencia", func(t *testing.T) {
		blocks := []m.ScheduleBlockModel{{
			ScheduleBlockTrainerID: &trainerID,
			ScheduleBlockStartsAt:  time.Date(2026, 3, 9, 6, 0, 0, 0, time.UTC),
			ScheduleBlockEndsAt:    time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC),
		}}
		assert.False(t, OccurrenceBlocked(blocks, sched, occDate, startMin, endMin))
	})
}
