// file: internals/features/billing/service/totals_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "migym_backend/internals/features/billing/model"
)

func TestItemSubtotal(t *testing.T) {
	tests := []struct {
		name      string
		qty       int
		unitPrice float64
		want      float64
	}{
		{"entero simple", 2, 150, 300},
		{"centavos", 3, 19.99, 59.97},
		{"residuo binario", 3, 0.1, 0.3},
		{"cantidad cero", 0, 99.9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ItemSubtotal(tt.qty, tt.unitPrice), 0.0001)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	items := []m.InvoiceItemModel{
		{InvoiceItemQuantity: 1, InvoiceItemUnitPrice: 450.00},
		{InvoiceItemQuantity: 2, InvoiceItemUnitPrice: 35.50},
		{InvoiceItemQuantity: 3, InvoiceItemUnitPrice: 0.10},
	}

	total, out := ComputeTotals(items)

	require.Len(t, out, 3)
	assert.InDelta(t, 450.00, out[0].InvoiceItemSubtotal, 0.0001)
	assert.InDelta(t, 71.00, out[1].InvoiceItemSubtotal, 0.0001)
	assert.InDelta(t, 0.30, out[2].InvoiceItemSubtotal, 0.0001)
	assert.InDelta(t, 521.30, total, 0.0001)
}

func TestComputeTotalsEmpty(t *testing.T) {
	total, out := ComputeTotals(nil)
	assert.Zero(t, total)
	assert.Empty(t, out)
}

func TestNextInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "GYM-202608-000001", NextInvoiceNumber(now, 1))
	assert.Equal(t, "GYM-202608-000042", NextInvoiceNumber(now, 42))

	january := time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "GYM-202701-000001", NextInvoiceNumber(january, 1))
}
