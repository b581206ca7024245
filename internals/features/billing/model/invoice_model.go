// file: internals/features/billing/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	clientModel "migym_backend/internals/features/clients/model"
)

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pendiente"
	InvoicePaid      InvoiceStatus = "pagada"
	InvoiceCancelled InvoiceStatus = "cancelada"
	InvoiceOverdue   InvoiceStatus = "vencida"
)

/* =========================
   Model: InvoiceModel (factura / nota de cobro)
========================= */

type InvoiceModel struct {
	InvoiceID uuid.UUID `json:"invoice_id" gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// correlativo legible, también usado como order_id en la pasarela
	InvoiceNumber string `json:"invoice_number" gorm:"column:invoice_number;type:varchar(40);not null;uniqueIndex:uq_invoices_number"`

	InvoiceClientID uuid.UUID                `json:"invoice_client_id" gorm:"column:invoice_client_id;type:uuid;not null;index"`
	Client          *clientModel.ClientModel `json:"client,omitempty" gorm:"foreignKey:InvoiceClientID;references:ClientID"`

	InvoiceSiteID uuid.UUID `json:"invoice_site_id" gorm:"column:invoice_site_id;type:uuid;not null;index"`

	InvoiceIssuedAt time.Time  `json:"invoice_issued_at" gorm:"column:invoice_issued_at;not null"`
	InvoiceDueDate  *time.Time `json:"invoice_due_date"  gorm:"column:invoice_due_date;type:date"`

	InvoiceTotal float64 `json:"invoice_total" gorm:"column:invoice_total;type:numeric(12,2);not null;default:0"`

	InvoiceStatus InvoiceStatus `json:"invoice_status" gorm:"column:invoice_status;type:varchar(12);not null;default:'pendiente';index"`

	InvoiceNotes *string `json:"invoice_notes" gorm:"column:invoice_notes;type:text"`

	Items    []InvoiceItemModel `json:"items,omitempty" gorm:"foreignKey:InvoiceItemInvoiceID;references:InvoiceID"`
	Payments []PaymentModel     `json:"payments,omitempty" gorm:"foreignKey:PaymentInvoiceID;references:InvoiceID"`

	InvoiceCreatedAt time.Time      `json:"invoice_created_at" gorm:"column:invoice_created_at;autoCreateTime"`
	InvoiceUpdatedAt time.Time      `json:"invoice_updated_at" gorm:"column:invoice_updated_at;autoUpdateTime"`
	InvoiceDeletedAt gorm.DeletedAt `json:"invoice_deleted_at" gorm:"column:invoice_deleted_at;index"`
}

func (InvoiceModel) TableName() string { return "invoices" }

/* =========================
   Renglones
========================= */

type InvoiceItemModel struct {
	InvoiceItemID        uuid.UUID `json:"invoice_item_id" gorm:"column:invoice_item_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceItemInvoiceID uuid.UUID `json:"invoice_item_invoice_id" gorm:"column:invoice_item_invoice_id;type:uuid;not null;index"`

	InvoiceItemDescription string  `json:"invoice_item_description" gorm:"column:invoice_item_description;type:varchar(200);not null"`
	InvoiceItemQuantity    int     `json:"invoice_item_quantity"    gorm:"column:invoice_item_quantity;not null;default:1"`
	InvoiceItemUnitPrice   float64 `json:"invoice_item_unit_price"  gorm:"column:invoice_item_unit_price;type:numeric(12,2);not null"`
	InvoiceItemSubtotal    float64 `json:"invoice_item_subtotal"    gorm:"column:invoice_item_subtotal;type:numeric(12,2);not null"`

	// referencias opcionales al origen del cargo
	InvoiceItemPlanID    *uuid.UUID `json:"invoice_item_plan_id"    gorm:"column:invoice_item_plan_id;type:uuid"`
	InvoiceItemProductID *uuid.UUID `json:"invoice_item_product_id" gorm:"column:invoice_item_product_id;type:uuid"`

	InvoiceItemCreatedAt time.Time `json:"invoice_item_created_at" gorm:"column:invoice_item_created_at;autoCreateTime"`
}

func (InvoiceItemModel) TableName() string { return "invoice_items" }

/* =========================
   Pagos
========================= */

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentCard     PaymentMethod = "tarjeta"
	PaymentMidtrans PaymentMethod = "midtrans"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pendiente"
	PaymentSettled  PaymentStatus = "acreditado"
	PaymentFailed   PaymentStatus = "fallido"
	PaymentRefunded PaymentStatus = "reembolsado"
)

type PaymentModel struct {
	PaymentID        uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PaymentInvoiceID uuid.UUID `json:"payment_invoice_id" gorm:"column:payment_invoice_id;type:uuid;not null;index"`

	PaymentMethod PaymentMethod `json:"payment_method" gorm:"column:payment_method;type:varchar(12);not null"`
	PaymentAmount float64       `json:"payment_amount" gorm:"column:payment_amount;type:numeric(12,2);not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"column:payment_status;type:varchar(12);not null;default:'pendiente';index"`

	// trazabilidad de la pasarela
	PaymentGatewayOrderID       *string `json:"payment_gateway_order_id"       gorm:"column:payment_gateway_order_id;type:varchar(64);index"`
	PaymentGatewayTransactionID *string `json:"payment_gateway_transaction_id" gorm:"column:payment_gateway_transaction_id;type:varchar(64)"`
	PaymentGatewayStatus        *string `json:"payment_gateway_status"         gorm:"column:payment_gateway_status;type:varchar(32)"`

	PaymentPaidAt *time.Time `json:"payment_paid_at" gorm:"column:payment_paid_at"`

	PaymentCreatedAt time.Time `json:"payment_created_at" gorm:"column:payment_created_at;autoCreateTime"`
	PaymentUpdatedAt time.Time `json:"payment_updated_at" gorm:"column:payment_updated_at;autoUpdateTime"`
}

func (PaymentModel) TableName() string { return "payments" }
