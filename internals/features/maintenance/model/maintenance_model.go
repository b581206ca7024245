// file: internals/features/maintenance/model/maintenance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	inventoryModel "migym_backend/internals/features/inventory/model"
)

type MaintenanceKind string

const (
	MaintenancePreventive MaintenanceKind = "preventivo"
	MaintenanceCorrective MaintenanceKind = "correctivo"
)

type MaintenanceStatus string

const (
	MaintenancePlanned    MaintenanceStatus = "planificado"
	MaintenanceInProgress MaintenanceStatus = "en_curso"
	MaintenanceCompleted  MaintenanceStatus = "completado"
	MaintenanceAborted    MaintenanceStatus = "abortado"
)

/* =========================
   Model: MaintenanceModel (orden de mantenimiento de un activo)
========================= */

type MaintenanceModel struct {
	MaintenanceID uuid.UUID `json:"maintenance_id" gorm:"column:maintenance_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	MaintenanceAssetID uuid.UUID                  `json:"maintenance_asset_id" gorm:"column:maintenance_asset_id;type:uuid;not null;index"`
	Asset              *inventoryModel.AssetModel `json:"asset,omitempty" gorm:"foreignKey:MaintenanceAssetID;references:AssetID;constraint:OnDelete:CASCADE"`

	MaintenanceKind   MaintenanceKind   `json:"maintenance_kind"   gorm:"column:maintenance_kind;type:varchar(12);not null"`
	MaintenanceStatus MaintenanceStatus `json:"maintenance_status" gorm:"column:maintenance_status;type:varchar(15);not null;default:'planificado';index"`

	MaintenanceDescription string  `json:"maintenance_description" gorm:"column:maintenance_description;type:text;not null"`
	MaintenanceResolution  *string `json:"maintenance_resolution"  gorm:"column:maintenance_resolution;type:text"`

	MaintenanceScheduledFor *time.Time `json:"maintenance_scheduled_for" gorm:"column:maintenance_scheduled_for;type:date"`
	MaintenanceStartedAt    *time.Time `json:"maintenance_started_at"    gorm:"column:maintenance_started_at"`
	MaintenanceCompletedAt  *time.Time `json:"maintenance_completed_at"  gorm:"column:maintenance_completed_at"`

	MaintenanceCost *float64 `json:"maintenance_cost" gorm:"column:maintenance_cost;type:numeric(12,2)"`

	MaintenanceCreatedAt time.Time      `json:"maintenance_created_at" gorm:"column:maintenance_created_at;autoCreateTime"`
	MaintenanceUpdatedAt time.Time      `json:"maintenance_updated_at" gorm:"column:maintenance_updated_at;autoUpdateTime"`
	MaintenanceDeletedAt gorm.DeletedAt `json:"maintenance_deleted_at" gorm:"column:maintenance_deleted_at;index"`
}

func (MaintenanceModel) TableName() string { return "maintenances" }
