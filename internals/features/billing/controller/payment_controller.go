// file: internals/features/billing/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "migym_backend/internals/features/billing/dto"
	m "migym_backend/internals/features/billing/model"
	"migym_backend/internals/features/billing/service"
	helper "migym_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPayment(db *gorm.DB, v *validator.Validate) *PaymentController {
	return &PaymentController{DB: db, Validate: v}
}

/* ========================= Pago manual (recepción) ========================= */

// RecordManual registra un pago en efectivo o tarjeta tomado en mostrador.
// Si el acumulado acreditado cubre el total, la factura pasa a pagada.
func (ctl *PaymentController) RecordManual(c *fiber.Ctx) error {
	invoiceID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.ManualPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var payment m.PaymentModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var invoice m.InvoiceModel
		if er := tx.Where("invoice_id = ?", invoiceID).First(&invoice).Error; er != nil {
			return er
		}
		if invoice.InvoiceStatus != m.InvoicePending && invoice.InvoiceStatus != m.InvoiceOverdue {
			return errInvoiceNotPayable
		}

		now := time.Now()
		payment = m.PaymentModel{
			PaymentInvoiceID: invoice.InvoiceID,
			PaymentMethod:    req.Method,
			PaymentAmount:    req.Amount,
			PaymentStatus:    m.PaymentSettled,
			PaymentPaidAt:    &now,
		}
		if er := tx.Create(&payment).Error; er != nil {
			return er
		}

		var settled float64
		if er := tx.Model(&m.PaymentModel{}).
			Where("payment_invoice_id = ? AND payment_status = ?", invoice.InvoiceID, m.PaymentSettled).
			Select("COALESCE(SUM(payment_amount), 0)").
			Scan(&settled).Error; er != nil {
			return er
		}
		if settled >= invoice.InvoiceTotal {
			invoice.InvoiceStatus = m.InvoicePaid
			return tx.Save(&invoice).Error
		}
		return nil
	}); err != nil {
		if errors.Is(err, errInvoiceNotPayable) {
			return helper.JsonError(c, fiber.StatusConflict, "La factura no admite pagos en su estado actual")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Factura no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Pago registrado", payment)
}

var errInvoiceNotPayable = errors.New("factura no pagable")

// DownloadReceipt entrega el ticket PDF de un pago.
func (ctl *PaymentController) DownloadReceipt(c *fiber.Ctx) error {
	paymentID, err := parseUUIDParam(c, "payment_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var payment m.PaymentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pago no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	var invoice m.InvoiceModel
	if err := ctl.DB.WithContext(c.Context()).Preload("Client.Person").
		Where("invoice_id = ?", payment.PaymentInvoiceID).First(&invoice).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pdfBytes, err := service.BuildReceiptPDF(&payment, &invoice)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el ticket")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ticket-`+payment.PaymentID.String()+`.pdf"`)
	return c.Send(pdfBytes)
}

/* ========================= Checkout Midtrans ========================= */

// CreateCheckout genera el token Snap para pagar la factura en línea.
func (ctl *PaymentController) CreateCheckout(c *fiber.Ctx) error {
	invoiceID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var invoice m.InvoiceModel
	if err := ctl.DB.Preload("Client.Person").
		Where("invoice_id = ?", invoiceID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Factura no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if invoice.InvoiceStatus != m.InvoicePending && invoice.InvoiceStatus != m.InvoiceOverdue {
		return helper.JsonError(c, fiber.StatusConflict, "La factura no admite pagos en su estado actual")
	}

	name, email := "", ""
	if invoice.Client != nil && invoice.Client.Person != nil {
		name = invoice.Client.Person.FullName()
		email = invoice.Client.Person.PersonEmail
	}
	token, err := service.GenerateSnapToken(&invoice, name, email)
	if err != nil {
		log.Println("[ERROR] midtrans snap:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "La pasarela de pago no respondió")
	}
	return helper.JsonOK(c, "Checkout creado", fiber.Map{
		"snap_token": token,
		"order_id":   invoice.InvoiceNumber,
	})
}

/* ========================= Webhook ========================= */

// HandleNotification recibe la notificación de la pasarela. La ruta queda
// fuera del middleware de auth; responder 200 evita reintentos infinitos.
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := service.ApplyGatewayNotification(ctl.DB, body); err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			log.Println("[WARN] webhook con order_id desconocido:", body["order_id"])
			return c.SendStatus(fiber.StatusOK)
		}
		log.Println("[ERROR] webhook midtrans:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}
