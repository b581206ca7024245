// file: internals/features/scheduling/reservation/service/reservation_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	m "migym_backend/internals/features/scheduling/reservation/model"
	scheduleModel "migym_backend/internals/features/scheduling/schedule/model"
	sessionModel "migym_backend/internals/features/scheduling/session/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestValidateReservable(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	active := &scheduleModel.ScheduleModel{ScheduleStatus: scheduleModel.ScheduleActive}
	suspended := &scheduleModel.ScheduleModel{ScheduleStatus: scheduleModel.ScheduleSuspended}

	tests := []struct {
		name    string
		session sessionModel.ClassSessionModel
		wantErr error
	}{
		{
			"programada y futura",
			sessionModel.ClassSessionModel{
				ClassSessionStatus: sessionModel.SessionScheduled,
				ClassSessionDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
				Schedule:           active,
			},
			nil,
		},
		{
			"mismo día todavía vale",
			sessionModel.ClassSessionModel{
				ClassSessionStatus: sessionModel.SessionScheduled,
				ClassSessionDate:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
				Schedule:           active,
			},
			nil,
		},
		{
			"sesión cancelada",
			sessionModel.ClassSessionModel{
				ClassSessionStatus: sessionModel.SessionCancelled,
				ClassSessionDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
				Schedule:           active,
			},
			ErrSessionNotReservable,
		},
		{
			"horario suspendido",
			sessionModel.ClassSessionModel{
				ClassSessionStatus: sessionModel.SessionScheduled,
				ClassSessionDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
				Schedule:           suspended,
			},
			ErrSessionNotReservable,
		},
		{
			"sin horario cargado",
			sessionModel.ClassSessionModel{
				ClassSessionStatus: sessionModel.SessionScheduled,
				ClassSessionDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			},
			ErrSessionNotReservable,
		},
		{
			"fecha pasada",
			sessionModel.ClassSessionModel{
				ClassSessionStatus: sessionModel.SessionScheduled,
				ClassSessionDate:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
				Schedule:           active,
			},
			ErrSessionInPast,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReservable(&tt.session, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

/* =========================
   Reserve contra sqlmock
========================= */

type reserveFixture struct {
	sessionID  uuid.UUID
	scheduleID uuid.UUID
	roomID     uuid.UUID
	siteID     uuid.UUID
	clientID   uuid.UUID
	date       time.Time
	now        time.Time
}

func newReserveFixture() reserveFixture {
	return reserveFixture{
		sessionID:  uuid.New(),
		scheduleID: uuid.New(),
		roomID:     uuid.New(),
		siteID:     uuid.New(),
		clientID:   uuid.New(),
		date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		now:        time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func (f reserveFixture) sessionRows(status sessionModel.SessionStatus, reserved int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"class_session_id", "class_session_schedule_id", "class_session_date",
		"class_session_status", "class_session_reserved_count",
	}).AddRow(f.sessionID.String(), f.scheduleID.String(), f.date, string(status), reserved)
}

func (f reserveFixture) scheduleRows(status scheduleModel.ScheduleStatus, capacity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"schedule_id", "schedule_trainer_id", "schedule_room_id",
		"schedule_capacity", "schedule_status",
	}).AddRow(f.scheduleID.String(), uuid.New().String(), f.roomID.String(), capacity, string(status))
}

func emptyReservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"class_reservation_id"})
}

func TestReserveRejectsCancelledSession(t *testing.T) {
	gdb, mock := newMockDB(t)
	f := newReserveFixture()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "class_sessions"`).
		WillReturnRows(f.sessionRows(sessionModel.SessionCancelled, 0))
	mock.ExpectQuery(`SELECT .+ FROM "schedules"`).
		WillReturnRows(f.scheduleRows(scheduleModel.ScheduleActive, 10))
	mock.ExpectRollback()

	_, err := Reserve(context.Background(), gdb, f.sessionID, f.clientID, f.now)
	assert.ErrorIs(t, err, ErrSessionNotReservable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRejectsSuspendedSchedule(t *testing.T) {
	gdb, mock := newMockDB(t)
	f := newReserveFixture()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "class_sessions"`).
		WillReturnRows(f.sessionRows(sessionModel.SessionScheduled, 0))
	mock.ExpectQuery(`SELECT .+ FROM "schedules"`).
		WillReturnRows(f.scheduleRows(scheduleModel.ScheduleSuspended, 10))
	mock.ExpectRollback()

	_, err := Reserve(context.Background(), gdb, f.sessionID, f.clientID, f.now)
	assert.ErrorIs(t, err, ErrSessionNotReservable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRejectsPastSession(t *testing.T) {
	gdb, mock := newMockDB(t)
	f := newReserveFixture()
	f.date = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "class_sessions"`).
		WillReturnRows(f.sessionRows(sessionModel.SessionScheduled, 0))
	mock.ExpectQuery(`SELECT .+ FROM "schedules"`).
		WillReturnRows(f.scheduleRows(scheduleModel.ScheduleActive, 10))
	mock.ExpectRollback()

	_, err := Reserve(context.Background(), gdb, f.sessionID, f.clientID, f.now)
	assert.ErrorIs(t, err, ErrSessionInPast)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRejectsFullSession(t *testing.T) {
	gdb, mock := newMockDB(t)
	f := newReserveFixture()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "class_sessions"`).
		WillReturnRows(f.sessionRows(sessionModel.SessionScheduled, 10))
	mock.ExpectQuery(`SELECT .+ FROM "schedules"`).
		WillReturnRows(f.scheduleRows(scheduleModel.ScheduleActive, 10))
	mock.ExpectQuery(`SELECT .+ FROM "class_reservations"`).
		WillReturnRows(emptyReservationRows())
	mock.ExpectRollback()

	_, err := Reserve(context.Background(), gdb, f.sessionID, f.clientID, f.now)
	assert.ErrorIs(t, err, ErrSessionFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRejectsWithoutMembership(t *testing.T) {
	gdb, mock := newMockDB(t)
	f := newReserveFixture()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "class_sessions"`).
		WillReturnRows(f.sessionRows(sessionModel.SessionScheduled, 3))
	mock.ExpectQuery(`SELECT .+ FROM "schedules"`).
		WillReturnRows(f.scheduleRows(scheduleModel.ScheduleActive, 10))
	mock.ExpectQuery(`SELECT .+ FROM "class_reservations"`).
		WillReturnRows(emptyReservationRows())
	mock.ExpectQuery(`SELECT .+ FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "room_site_id"}).
			AddRow(f.roomID.String(), f.siteID.String()))
	mock.ExpectQuery(`SELECT .+ FROM "subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{"subscription_id"}))
	mock.ExpectRollback()

	_, err := Reserve(context.Background(), gdb, f.sessionID, f.clientID, f.now)
	assert.ErrorIs(t, err, ErrNoMembership)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveReactivatesCancelledRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	f := newReserveFixture()
	reservationID := uuid.New()
	planID := uuid.New()
	cancelledAt := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "class_sessions"`).
		WillReturnRows(f.sessionRows(sessionModel.SessionScheduled, 3))
	mock.ExpectQuery(`SELECT .+ FROM "schedules"`).
		WillReturnRows(f.scheduleRows(scheduleModel.ScheduleActive, 10))
	mock.ExpectQuery(`SELECT .+ FROM "class_reservations"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"class_reservation_id", "class_reservation_session_id",
			"class_reservation_client_id", "class_reservation_status",
			"class_reservation_cancelled_at",
		}).AddRow(reservationID.String(), f.sessionID.String(), f.clientID.String(),
			string(m.ReservationCancelled), cancelledAt))
	mock.ExpectQuery(`SELECT .+ FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "room_site_id"}).
			AddRow(f.roomID.String(), f.siteID.String()))
	mock.ExpectQuery(`SELECT .+ FROM "subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"subscription_id", "subscription_client_id", "subscription_plan_id",
			"subscription_start_date", "subscription_end_date", "subscription_status",
		}).AddRow(uuid.New().String(), f.clientID.String(), planID.String(),
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), "activa"))
	mock.ExpectQuery(`SELECT .+ FROM "membership_plans"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"membership_plan_id", "membership_plan_all_sites", "membership_plan_duration_days",
		}).AddRow(planID.String(), true, 365))
	mock.ExpectQuery(`membership_plan_sites`).
		WillReturnRows(sqlmock.NewRows([]string{"site_id"}))
	mock.ExpectExec(`UPDATE "class_reservations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "class_sessions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := Reserve(context.Background(), gdb, f.sessionID, f.clientID, f.now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, reservationID, got.ClassReservationID)
	assert.Equal(t, m.ReservationConfirmed, got.ClassReservationStatus)
	assert.Nil(t, got.ClassReservationCancelledAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
