// file: internals/features/billing/service/pdf_service.go
package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	m "migym_backend/internals/features/billing/model"
)

// BuildInvoicePDF genera el comprobante imprimible de una factura.
// Requiere Client.Person e Items precargados.
func BuildInvoicePDF(inv *m.InvoiceModel) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Factura %s", inv.InvoiceNumber), false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Comprobante de cobro"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Factura: %s", inv.InvoiceNumber)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Emitida: %s", inv.InvoiceIssuedAt.Format("2006-01-02"))))
	pdf.Ln(6)
	if inv.InvoiceDueDate != nil {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Vence: %s", inv.InvoiceDueDate.Format("2006-01-02"))))
		pdf.Ln(6)
	}
	if inv.Client != nil && inv.Client.Person != nil {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Cliente: %s", inv.Client.Person.FullName())))
		pdf.Ln(6)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Email: %s", inv.Client.Person.PersonEmail)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr(fmt.Sprintf("Estado: %s", inv.InvoiceStatus)))
	pdf.Ln(10)

	// tabla de renglones
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 7, tr("Concepto"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, tr("Cant."), "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, tr("P. unitario"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, tr("Subtotal"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(100, 7, tr(item.InvoiceItemDescription), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.InvoiceItemQuantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.InvoiceItemUnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.InvoiceItemSubtotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(155, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", inv.InvoiceTotal), "1", 1, "R", false, 0, "")

	if inv.InvoiceNotes != nil {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr(*inv.InvoiceNotes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildReceiptPDF genera el ticket de un pago individual. Requiere la
// factura con Client.Person precargado.
func BuildReceiptPDF(p *m.PaymentModel, inv *m.InvoiceModel) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Ticket de pago %s", p.PaymentID), false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Ticket de pago"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Pago: %s", p.PaymentID)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Factura: %s", inv.InvoiceNumber)))
	pdf.Ln(6)
	if inv.Client != nil && inv.Client.Person != nil {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Cliente: %s", inv.Client.Person.FullName())))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr(fmt.Sprintf("Método: %s", p.PaymentMethod)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Estado: %s", p.PaymentStatus)))
	pdf.Ln(6)
	if p.PaymentPaidAt != nil {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Pagado: %s", p.PaymentPaidAt.Format("2006-01-02 15:04"))))
		pdf.Ln(6)
	}
	if p.PaymentGatewayTransactionID != nil {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Referencia: %s", *p.PaymentGatewayTransactionID)))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Importe: %.2f", p.PaymentAmount)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
