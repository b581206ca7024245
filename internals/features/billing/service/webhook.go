// file: internals/features/billing/service/webhook.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	m "migym_backend/internals/features/billing/model"
)

var ErrInvoiceNotFound = errors.New("factura no encontrada para ese order_id")

// ApplyGatewayNotification procesa el webhook de la pasarela: localiza la
// factura por order_id, actualiza (o crea) el pago de pasarela y, si la
// transacción quedó acreditada, marca la factura como pagada. Todo en una
// transacción para que un reintento del webhook sea inocuo.
func ApplyGatewayNotification(db *gorm.DB, payload map[string]interface{}) error {
	orderID, _ := payload["order_id"].(string)
	transactionStatus, _ := payload["transaction_status"].(string)
	transactionID, _ := payload["transaction_id"].(string)
	fraudStatus, _ := payload["fraud_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return fmt.Errorf("payload del webhook incompleto")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var invoice m.InvoiceModel
		if err := tx.Where("invoice_number = ?", orderID).First(&invoice).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		var payment m.PaymentModel
		err := tx.Where("payment_invoice_id = ? AND payment_method = ?", invoice.InvoiceID, m.PaymentMidtrans).
			First(&payment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			payment = m.PaymentModel{
				PaymentInvoiceID: invoice.InvoiceID,
				PaymentMethod:    m.PaymentMidtrans,
				PaymentAmount:    invoice.InvoiceTotal,
				PaymentStatus:    m.PaymentPending,
			}
		} else if err != nil {
			return err
		}

		payment.PaymentGatewayOrderID = &orderID
		payment.PaymentGatewayTransactionID = &transactionID
		payment.PaymentGatewayStatus = &transactionStatus

		switch transactionStatus {
		case "settlement":
			payment.PaymentStatus = m.PaymentSettled
		case "capture":
			if fraudStatus == "accept" {
				payment.PaymentStatus = m.PaymentSettled
			} else {
				payment.PaymentStatus = m.PaymentPending
			}
		case "deny", "cancel", "expire", "failure":
			payment.PaymentStatus = m.PaymentFailed
		case "refund", "partial_refund":
			payment.PaymentStatus = m.PaymentRefunded
		default:
			payment.PaymentStatus = m.PaymentPending
		}

		if payment.PaymentStatus == m.PaymentSettled && payment.PaymentPaidAt == nil {
			now := time.Now()
			payment.PaymentPaidAt = &now
		}
		if er := tx.Save(&payment).Error; er != nil {
			return er
		}

		if payment.PaymentStatus == m.PaymentSettled && invoice.InvoiceStatus == m.InvoicePending {
			invoice.InvoiceStatus = m.InvoicePaid
			return tx.Save(&invoice).Error
		}
		return nil
	})
}
