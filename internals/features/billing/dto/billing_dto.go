// file: internals/features/billing/dto/billing_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "migym_backend/internals/features/billing/model"
)

type InvoiceItemRequest struct {
	Description string     `json:"description" validate:"required,min=1,max=200"`
	Quantity    int        `json:"quantity"    validate:"required,min=1"`
	UnitPrice   float64    `json:"unit_price"  validate:"required,min=0"`
	PlanID      *uuid.UUID `json:"plan_id"`
	ProductID   *uuid.UUID `json:"product_id"`
}

type InvoiceCreateRequest struct {
	ClientID uuid.UUID            `json:"client_id" validate:"required"`
	SiteID   uuid.UUID            `json:"site_id"   validate:"required"`
	DueDate  *time.Time           `json:"due_date"`
	Notes    *string              `json:"notes"`
	Items    []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *InvoiceCreateRequest) Normalize() {
	for i := range r.Items {
		r.Items[i].Description = strings.TrimSpace(r.Items[i].Description)
	}
}

func (r InvoiceCreateRequest) ToItems() []m.InvoiceItemModel {
	items := make([]m.InvoiceItemModel, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, m.InvoiceItemModel{
			InvoiceItemDescription: it.Description,
			InvoiceItemQuantity:    it.Quantity,
			InvoiceItemUnitPrice:   it.UnitPrice,
			InvoiceItemPlanID:      it.PlanID,
			InvoiceItemProductID:   it.ProductID,
		})
	}
	return items
}

type ManualPaymentRequest struct {
	Method m.PaymentMethod `json:"method" validate:"required,oneof=efectivo tarjeta"`
	Amount float64         `json:"amount" validate:"required,min=0.01"`
}
