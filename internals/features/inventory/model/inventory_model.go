// file: internals/features/inventory/model/inventory_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Model: ProductModel (consumibles de venta: bebidas, suplementos...)
========================= */

type ProductModel struct {
	ProductID uuid.UUID `json:"product_id" gorm:"column:product_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ProductSiteID uuid.UUID `json:"product_site_id" gorm:"column:product_site_id;type:uuid;not null;index"`

	ProductName        string  `json:"product_name" gorm:"column:product_name;type:varchar(160);not null"`
	ProductSKU         *string `json:"product_sku"  gorm:"column:product_sku;type:varchar(60);uniqueIndex:uq_products_sku"`
	ProductDescription *string `json:"product_description" gorm:"column:product_description;type:text"`

	ProductPrice float64 `json:"product_price" gorm:"column:product_price;type:numeric(12,2);not null"`
	ProductStock int     `json:"product_stock" gorm:"column:product_stock;not null;default:0"`

	ProductIsActive bool `json:"product_is_active" gorm:"column:product_is_active;not null;default:true"`

	ProductCreatedAt time.Time      `json:"product_created_at" gorm:"column:product_created_at;autoCreateTime"`
	ProductUpdatedAt time.Time      `json:"product_updated_at" gorm:"column:product_updated_at;autoUpdateTime"`
	ProductDeletedAt gorm.DeletedAt `json:"product_deleted_at" gorm:"column:product_deleted_at;index"`
}

func (ProductModel) TableName() string { return "products" }

/* =========================
   Movimientos de stock (auditoría de ajustes)
========================= */

type StockMovementModel struct {
	StockMovementID        uuid.UUID `json:"stock_movement_id" gorm:"column:stock_movement_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StockMovementProductID uuid.UUID `json:"stock_movement_product_id" gorm:"column:stock_movement_product_id;type:uuid;not null;index"`

	// positivo entra, negativo sale
	StockMovementDelta  int     `json:"stock_movement_delta" gorm:"column:stock_movement_delta;not null"`
	StockMovementReason *string `json:"stock_movement_reason" gorm:"column:stock_movement_reason;type:text"`

	StockMovementCreatedAt time.Time `json:"stock_movement_created_at" gorm:"column:stock_movement_created_at;autoCreateTime"`
}

func (StockMovementModel) TableName() string { return "stock_movements" }

/* =========================
   Model: AssetModel (equipamiento: caminadoras, pesas...)
========================= */

type AssetStatus string

const (
	AssetOperational      AssetStatus = "operativo"
	AssetUnderMaintenance AssetStatus = "en_mantenimiento"
	AssetOutOfService     AssetStatus = "fuera_de_servicio"
	AssetRetired          AssetStatus = "dado_de_baja"
)

type AssetModel struct {
	AssetID uuid.UUID `json:"asset_id" gorm:"column:asset_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AssetSiteID uuid.UUID  `json:"asset_site_id" gorm:"column:asset_site_id;type:uuid;not null;index"`
	AssetRoomID *uuid.UUID `json:"asset_room_id" gorm:"column:asset_room_id;type:uuid;index"`

	AssetName         string  `json:"asset_name" gorm:"column:asset_name;type:varchar(160);not null"`
	AssetSerialNumber *string `json:"asset_serial_number" gorm:"column:asset_serial_number;type:varchar(80);uniqueIndex:uq_assets_serial"`
	AssetBrand        *string `json:"asset_brand" gorm:"column:asset_brand;type:varchar(80)"`

	AssetPurchaseDate *time.Time `json:"asset_purchase_date" gorm:"column:asset_purchase_date;type:date"`
	AssetPurchaseCost *float64   `json:"asset_purchase_cost" gorm:"column:asset_purchase_cost;type:numeric(12,2)"`

	// ficha técnica libre (voltaje, dimensiones, etc.)
	AssetSpecs datatypes.JSON `json:"asset_specs" gorm:"column:asset_specs;type:jsonb"`

	AssetPhotoPath *string `json:"asset_photo_path" gorm:"column:asset_photo_path;type:text"`

	AssetStatus AssetStatus `json:"asset_status" gorm:"column:asset_status;type:varchar(20);not null;default:'operativo';index"`

	AssetCreatedAt time.Time      `json:"asset_created_at" gorm:"column:asset_created_at;autoCreateTime"`
	AssetUpdatedAt time.Time      `json:"asset_updated_at" gorm:"column:asset_updated_at;autoUpdateTime"`
	AssetDeletedAt gorm.DeletedAt `json:"asset_deleted_at" gorm:"column:asset_deleted_at;index"`
}

func (AssetModel) TableName() string { return "assets" }
