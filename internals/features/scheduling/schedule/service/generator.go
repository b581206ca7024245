// file: internals/features/scheduling/schedule/service/generator.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "migym_backend/internals/features/scheduling/schedule/model"
	sessionModel "migym_backend/internals/features/scheduling/session/model"
)

// isoWeekday traduce time.Weekday (domingo=0) a ISO (lunes=1 ... domingo=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ExpandOccurrences devuelve las fechas del día de la semana del horario
// dentro de la intersección de [from, to] con la vigencia del horario.
// Es puro: los bloqueos se filtran aparte.
func ExpandOccurrences(s *m.ScheduleModel, from, to time.Time) []time.Time {
	from = from.Truncate(24 * time.Hour)
	to = to.Truncate(24 * time.Hour)

	if vf := s.ScheduleValidFrom.Truncate(24 * time.Hour); from.Before(vf) {
		from = vf
	}
	if vu := s.ScheduleValidUntil.Truncate(24 * time.Hour); to.After(vu) {
		to = vu
	}
	if from.After(to) {
		return nil
	}

	// avanzar hasta la primera ocurrencia del día buscado
	for isoWeekday(from) != s.ScheduleDayOfWeek {
		from = from.AddDate(0, 0, 1)
		if from.After(to) {
			return nil
		}
	}

	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 7) {
		out = append(out, d)
	}
	return out
}

// OccurrenceBlocked indica si alguna ventana de bloqueo del entrenador o
// del espacio se solapa con la ocurrencia del horario en esa fecha.
func OccurrenceBlocked(blocks []m.ScheduleBlockModel, s *m.ScheduleModel, date time.Time, startMin, endMin int) bool {
	occStart := date.Add(time.Duration(startMin) * time.Minute)
	occEnd := date.Add(time.Duration(endMin) * time.Minute)
	for i := range blocks {
		if blocks[i].AppliesTo(s) && blocks[i].Overlaps(occStart, occEnd) {
			return true
		}
	}
	return false
}

// GenerateSessions materializa las sesiones del horario en el rango dado.
// Las ocurrencias que se solapan con un bloqueo del entrenador o del espacio
// se saltan, y las ya existentes se conservan intactas (ON CONFLICT DO
// NOTHING), así que regenerar es idempotente y no pisa overrides ni reservas.
func GenerateSessions(ctx context.Context, db *gorm.DB, s *m.ScheduleModel, from, to time.Time) (int64, error) {
	startMin, err := ParseClock(s.ScheduleStartTime)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(s.ScheduleEndTime)
	if err != nil {
		return 0, err
	}

	var blocks []m.ScheduleBlockModel
	if err := db.WithContext(ctx).
		Where("schedule_block_trainer_id = ? OR schedule_block_room_id = ?", s.ScheduleTrainerID, s.ScheduleRoomID).
		Where("schedule_block_ends_at > ? AND schedule_block_starts_at < ?",
			from.Truncate(24*time.Hour), to.Truncate(24*time.Hour).AddDate(0, 0, 1)).
		Find(&blocks).Error; err != nil {
		return 0, err
	}

	dates := ExpandOccurrences(s, from, to)
	sessions := make([]sessionModel.ClassSessionModel, 0, len(dates))
	for _, d := range dates {
		if OccurrenceBlocked(blocks, s, d, startMin, endMin) {
			continue
		}
		sessions = append(sessions, sessionModel.ClassSessionModel{
			ClassSessionScheduleID: s.ScheduleID,
			ClassSessionDate:       d,
			ClassSessionStatus:     sessionModel.SessionScheduled,
		})
	}
	if len(sessions) == 0 {
		return 0, nil
	}

	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "class_session_schedule_id"}, {Name: "class_session_date"}},
			DoNothing: true,
		}).
		Create(&sessions)
	return res.RowsAffected, res.Error
}
