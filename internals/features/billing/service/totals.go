// file: internals/features/billing/service/totals.go
package service

import (
	"fmt"
	"math"
	"time"

	m "migym_backend/internals/features/billing/model"
)

// round2 evita arrastrar residuos binarios en los importes.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemSubtotal calcula cantidad por precio unitario, redondeado a centavos.
func ItemSubtotal(quantity int, unitPrice float64) float64 {
	return round2(float64(quantity) * unitPrice)
}

// ComputeTotals fija el subtotal de cada renglón y devuelve el total de la
// factura. El total siempre se deriva de los renglones, nunca se acepta del
// cliente.
func ComputeTotals(items []m.InvoiceItemModel) (float64, []m.InvoiceItemModel) {
	var total float64
	for i := range items {
		items[i].InvoiceItemSubtotal = ItemSubtotal(items[i].InvoiceItemQuantity, items[i].InvoiceItemUnitPrice)
		total += items[i].InvoiceItemSubtotal
	}
	return round2(total), items
}

// NextInvoiceNumber arma el correlativo legible: GYM-AAAAMM-<secuencia>.
func NextInvoiceNumber(now time.Time, seq int64) string {
	return fmt.Sprintf("GYM-%s-%06d", now.Format("200601"), seq)
}
