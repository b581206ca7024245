// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsOffset(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    int
	}{
		{"primera página", 1, 25, 0},
		{"segunda página", 2, 25, 25},
		{"página alta", 10, 50, 450},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Page: tt.page, PerPage: tt.perPage}
			assert.Equal(t, tt.want, p.Offset())
		})
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "client_created_at",
		"name":       "client_name",
	}

	t.Run("clave permitida", func(t *testing.T) {
		p := Params{SortBy: "name", SortOrder: "asc"}
		clause, err := p.SafeOrderClause(allowed, "created_at")
		require.NoError(t, err)
		assert.Equal(t, "client_name ASC", clause)
	})

	t.Run("clave desconocida cae al default", func(t *testing.T) {
		p := Params{SortBy: "password; DROP TABLE clients", SortOrder: "desc"}
		clause, err := p.SafeOrderClause(allowed, "created_at")
		require.NoError(t, err)
		assert.Equal(t, "client_created_at DESC", clause)
	})

	t.Run("orden inválido es DESC", func(t *testing.T) {
		p := Params{SortBy: "name", SortOrder: "sideways"}
		clause, err := p.SafeOrderClause(allowed, "created_at")
		require.NoError(t, err)
		assert.Equal(t, "client_name DESC", clause)
	})

	t.Run("default ausente es error", func(t *testing.T) {
		p := Params{SortBy: "nope"}
		_, err := p.SafeOrderClause(allowed, "missing")
		assert.Error(t, err)
	})
}

func TestBuildPagination(t *testing.T) {
	pg := BuildPagination(101, 2, 25)
	assert.Equal(t, int64(101), pg.Total)
	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 25, pg.PerPage)
	assert.Equal(t, 5, pg.TotalPages)
}
