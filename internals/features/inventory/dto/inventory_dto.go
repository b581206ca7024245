// file: internals/features/inventory/dto/inventory_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "migym_backend/internals/features/inventory/model"
)

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

/* ----------------- PRODUCTOS ----------------- */

type ProductCreateRequest struct {
	SiteID      uuid.UUID `json:"site_id" validate:"required"`
	Name        string    `json:"name"    validate:"required,min=1,max=160"`
	SKU         *string   `json:"sku"     validate:"omitempty,max=60"`
	Description *string   `json:"description"`
	Price       float64   `json:"price" validate:"required,min=0"`
	Stock       int       `json:"stock" validate:"min=0"`
}

func (r *ProductCreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SKU = trimPtr(r.SKU)
}

func (r ProductCreateRequest) ToModel() *m.ProductModel {
	return &m.ProductModel{
		ProductSiteID:      r.SiteID,
		ProductName:        r.Name,
		ProductSKU:         r.SKU,
		ProductDescription: r.Description,
		ProductPrice:       r.Price,
		ProductStock:       r.Stock,
		ProductIsActive:    true,
	}
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name"  validate:"omitempty,min=1,max=160"`
	SKU         *string  `json:"sku"   validate:"omitempty,max=60"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active"`
}

func (r ProductUpdateRequest) Apply(p *m.ProductModel) {
	if r.Name != nil {
		p.ProductName = strings.TrimSpace(*r.Name)
	}
	if r.SKU != nil {
		p.ProductSKU = trimPtr(r.SKU)
	}
	if r.Description != nil {
		p.ProductDescription = r.Description
	}
	if r.Price != nil {
		p.ProductPrice = *r.Price
	}
	if r.IsActive != nil {
		p.ProductIsActive = *r.IsActive
	}
	p.ProductUpdatedAt = time.Now()
}

// el stock no se edita por PATCH, solo por ajustes auditados
type StockAdjustRequest struct {
	Delta  int     `json:"delta"  validate:"required"`
	Reason *string `json:"reason"`
}

/* ----------------- ACTIVOS ----------------- */

type AssetCreateRequest struct {
	SiteID       uuid.UUID      `json:"site_id" validate:"required"`
	RoomID       *uuid.UUID     `json:"room_id"`
	Name         string         `json:"name" validate:"required,min=1,max=160"`
	SerialNumber *string        `json:"serial_number" validate:"omitempty,max=80"`
	Brand        *string        `json:"brand" validate:"omitempty,max=80"`
	PurchaseDate *time.Time     `json:"purchase_date"`
	PurchaseCost *float64       `json:"purchase_cost" validate:"omitempty,min=0"`
	Specs        datatypes.JSON `json:"specs"`
}

func (r *AssetCreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SerialNumber = trimPtr(r.SerialNumber)
	r.Brand = trimPtr(r.Brand)
}

func (r AssetCreateRequest) ToModel() *m.AssetModel {
	return &m.AssetModel{
		AssetSiteID:       r.SiteID,
		AssetRoomID:       r.RoomID,
		AssetName:         r.Name,
		AssetSerialNumber: r.SerialNumber,
		AssetBrand:        r.Brand,
		AssetPurchaseDate: r.PurchaseDate,
		AssetPurchaseCost: r.PurchaseCost,
		AssetSpecs:        r.Specs,
		AssetStatus:       m.AssetOperational,
	}
}

type AssetUpdateRequest struct {
	RoomID       *uuid.UUID      `json:"room_id"`
	Name         *string         `json:"name" validate:"omitempty,min=1,max=160"`
	SerialNumber *string         `json:"serial_number" validate:"omitempty,max=80"`
	Brand        *string         `json:"brand" validate:"omitempty,max=80"`
	PurchaseDate *time.Time      `json:"purchase_date"`
	PurchaseCost *float64        `json:"purchase_cost" validate:"omitempty,min=0"`
	Specs        *datatypes.JSON `json:"specs"`
}

func (r AssetUpdateRequest) Apply(a *m.AssetModel) {
	if r.RoomID != nil {
		a.AssetRoomID = r.RoomID
	}
	if r.Name != nil {
		a.AssetName = strings.TrimSpace(*r.Name)
	}
	if r.SerialNumber != nil {
		a.AssetSerialNumber = trimPtr(r.SerialNumber)
	}
	if r.Brand != nil {
		a.AssetBrand = trimPtr(r.Brand)
	}
	if r.PurchaseDate != nil {
		a.AssetPurchaseDate = r.PurchaseDate
	}
	if r.PurchaseCost != nil {
		a.AssetPurchaseCost = r.PurchaseCost
	}
	if r.Specs != nil {
		a.AssetSpecs = *r.Specs
	}
	a.AssetUpdatedAt = time.Now()
}
