// file: internals/features/memberships/service/subscription_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	m "migym_backend/internals/features/memberships/model"
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

func TestExpireOverdue(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "subscriptions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	expired, err := ExpireOverdue(context.Background(), gdb, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireOverdueNothingToExpire(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "subscriptions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	expired, err := ExpireOverdue(context.Background(), gdb, time.Now())
	require.NoError(t, err)
	assert.Zero(t, expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindValidSubscriptionPicksCoveringRow(t *testing.T) {
	// la consulta trae varias filas, solo debe valer la que cubre el día
	past := m.SubscriptionModel{
		SubscriptionStatus:    m.SubscriptionActive,
		SubscriptionStartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		SubscriptionEndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	current := m.SubscriptionModel{
		SubscriptionStatus:    m.SubscriptionActive,
		SubscriptionStartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		SubscriptionEndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.False(t, past.IsValidOn(day))
	assert.True(t, current.IsValidOn(day))
}
