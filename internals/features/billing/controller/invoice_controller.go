// file: internals/features/billing/controller/invoice_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "migym_backend/internals/features/billing/dto"
	m "migym_backend/internals/features/billing/model"
	"migym_backend/internals/features/billing/service"
	clientModel "migym_backend/internals/features/clients/model"
	helper "migym_backend/internals/helpers"
)

type InvoiceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *InvoiceController {
	return &InvoiceController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* ========================= Alta ========================= */

func (ctl *InvoiceController) Create(c *fiber.Ctx) error {
	var req d.InvoiceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var client clientModel.ClientModel
	if err := ctl.DB.Where("client_id = ?", req.ClientID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "El cliente no existe")
		}
		return helper.WritePGError(c, err)
	}

	now := time.Now()
	total, items := service.ComputeTotals(req.ToItems())

	var invoice m.InvoiceModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// correlativo por mes calendario
		var seq int64
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if er := tx.Model(&m.InvoiceModel{}).
			Where("invoice_created_at >= ?", monthStart).
			Count(&seq).Error; er != nil {
			return er
		}

		invoice = m.InvoiceModel{
			InvoiceNumber:   service.NextInvoiceNumber(now, seq+1),
			InvoiceClientID: client.ClientID,
			InvoiceSiteID:   req.SiteID,
			InvoiceIssuedAt: now,
			InvoiceDueDate:  req.DueDate,
			InvoiceTotal:    total,
			InvoiceStatus:   m.InvoicePending,
			InvoiceNotes:    req.Notes,
		}
		if er := tx.Create(&invoice).Error; er != nil {
			return er
		}
		for i := range items {
			items[i].InvoiceItemInvoiceID = invoice.InvoiceID
		}
		return tx.Create(&items).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}
	invoice.Items = items
	return helper.JsonCreated(c, "Factura emitida", invoice)
}

/* ========================= Listado / Detalle ========================= */

func (ctl *InvoiceController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "issued_at", "desc", helper.AdminOpts)
	allowed := map[string]string{
		"issued_at": "invoice_issued_at",
		"total":     "invoice_total",
	}
	order, err := p.SafeOrderClause(allowed, "issued_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&m.InvoiceModel{})
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("invoice_client_id = ?", clientID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("invoice_status = ?", status)
	}
	if siteID := c.Query("site_id"); siteID != "" {
		q = q.Where("invoice_site_id = ?", siteID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var invoices []m.InvoiceModel
	if err := q.Preload("Client.Person").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&invoices).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", invoices, &pg)
}

func (ctl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var invoice m.InvoiceModel
	if err := ctl.DB.Preload("Client.Person").Preload("Items").Preload("Payments").
		Where("invoice_id = ?", id).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Factura no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", invoice)
}

/* ========================= PDF ========================= */

func (ctl *InvoiceController) DownloadPDF(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var invoice m.InvoiceModel
	if err := ctl.DB.Preload("Client.Person").Preload("Items").
		Where("invoice_id = ?", id).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Factura no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	data, err := service.BuildInvoicePDF(&invoice)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, invoice.InvoiceNumber))
	return c.Send(data)
}

/* ========================= Cancelación ========================= */

func (ctl *InvoiceController) Cancel(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var invoice m.InvoiceModel
	if err := ctl.DB.Where("invoice_id = ?", id).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Factura no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if invoice.InvoiceStatus == m.InvoicePaid {
		return helper.JsonError(c, fiber.StatusConflict, "Una factura pagada no se cancela")
	}
	invoice.InvoiceStatus = m.InvoiceCancelled
	if err := ctl.DB.Save(&invoice).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Factura cancelada", invoice)
}
