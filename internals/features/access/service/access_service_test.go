// file: internals/features/access/service/access_service_test.go
package service

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		wantFirst string
		wantLast  string
	}{
		{"nombre y apellido", "Ana García", "Ana", "García"},
		{"apellido compuesto", "Juan de la Cruz", "Juan", "de la Cruz"},
		{"una sola palabra", "Ana", "Ana", ""},
		{"espacios extra", "  Ana   García  ", "Ana", "García"},
		{"vacío", "", "", ""},
		{"solo espacios", "   ", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitFullName(tt.term)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestFindClientBySearchTermMatchesPhoneSubstring(t *testing.T) {
	gdb, mock := newMockDB(t)
	clientID := uuid.New()
	personID := uuid.New()

	mock.ExpectQuery(`FROM "clients" JOIN persons .+ person_first_name ILIKE .+ OR persons\.person_last_name ILIKE .+ OR persons\.person_phone ILIKE`).
		WithArgs("%5512%", "%5512%", "%5512%").
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "client_person_id", "client_is_active"}).
			AddRow(clientID.String(), personID.String(), true))
	mock.ExpectQuery(`SELECT .+ FROM "persons"`).
		WillReturnRows(sqlmock.NewRows([]string{"person_id", "person_phone"}).
			AddRow(personID.String(), "+52 5512345678"))

	got, err := FindClientBySearchTerm(context.Background(), gdb, "5512")
	require.NoError(t, err)
	assert.Equal(t, clientID, got.ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClientBySearchTermEmailSubstring(t *testing.T) {
	gdb, mock := newMockDB(t)
	clientID := uuid.New()
	personID := uuid.New()

	mock.ExpectQuery(`FROM "clients" JOIN persons .+ person_email ILIKE`).
		WithArgs("%ana@%").
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "client_person_id", "client_is_active"}).
			AddRow(clientID.String(), personID.String(), true))
	mock.ExpectQuery(`SELECT .+ FROM "persons"`).
		WillReturnRows(sqlmock.NewRows([]string{"person_id", "person_email"}).
			AddRow(personID.String(), "ana@migym.mx"))

	got, err := FindClientBySearchTerm(context.Background(), gdb, "ana@")
	require.NoError(t, err)
	assert.Equal(t, clientID, got.ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClientBySearchTermWrapsNamesInWildcards(t *testing.T) {
	gdb, mock := newMockDB(t)
	clientID := uuid.New()
	personID := uuid.New()

	mock.ExpectQuery(`FROM "clients" JOIN persons .+ person_first_name ILIKE .+ AND persons\.person_last_name ILIKE`).
		WithArgs("%Ana%", "%García%").
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "client_person_id", "client_is_active"}).
			AddRow(clientID.String(), personID.String(), true))
	mock.ExpectQuery(`SELECT .+ FROM "persons"`).
		WillReturnRows(sqlmock.NewRows([]string{"person_id"}).
			AddRow(personID.String()))

	got, err := FindClientBySearchTerm(context.Background(), gdb, "Ana García")
	require.NoError(t, err)
	assert.Equal(t, clientID, got.ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClientBySearchTermNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`FROM "clients" JOIN persons`).
		WillReturnRows(sqlmock.NewRows([]string{"client_id"}))

	_, err := FindClientBySearchTerm(context.Background(), gdb, "nadie")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
