// file: internals/features/maintenance/service/maintenance_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	inventoryModel "migym_backend/internals/features/inventory/model"
	m "migym_backend/internals/features/maintenance/model"
)

var (
	ErrNotPlanned    = errors.New("solo una orden planificada puede iniciarse")
	ErrNotInProgress = errors.New("solo una orden en curso puede completarse o abortarse")
	ErrAssetRetired  = errors.New("el activo está dado de baja")
	ErrAssetBusy     = errors.New("el activo ya tiene un mantenimiento en curso")
)

// El cambio de estado del activo es una decisión explícita de estas
// funciones, no un hook de persistencia: quien lee el flujo ve aquí todo lo
// que pasa con el activo.

// Start pone la orden en curso y el activo en mantenimiento, en una sola
// transacción.
func Start(ctx context.Context, db *gorm.DB, maintenanceID uuid.UUID) (*m.MaintenanceModel, error) {
	var order m.MaintenanceModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if er := tx.Where("maintenance_id = ?", maintenanceID).First(&order).Error; er != nil {
			return er
		}
		if order.MaintenanceStatus != m.MaintenancePlanned {
			return ErrNotPlanned
		}

		var asset inventoryModel.AssetModel
		if er := tx.Where("asset_id = ?", order.MaintenanceAssetID).First(&asset).Error; er != nil {
			return er
		}
		if asset.AssetStatus == inventoryModel.AssetRetired {
			return ErrAssetRetired
		}
		if asset.AssetStatus == inventoryModel.AssetUnderMaintenance {
			return ErrAssetBusy
		}

		now := time.Now()
		order.MaintenanceStatus = m.MaintenanceInProgress
		order.MaintenanceStartedAt = &now
		if er := tx.Save(&order).Error; er != nil {
			return er
		}

		asset.AssetStatus = inventoryModel.AssetUnderMaintenance
		return tx.Save(&asset).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Complete cierra la orden y devuelve el activo a operativo, o lo deja
// fuera de servicio si la reparación no alcanzó.
func Complete(ctx context.Context, db *gorm.DB, maintenanceID uuid.UUID, resolution string, cost *float64, assetOperational bool) (*m.MaintenanceModel, error) {
	var order m.MaintenanceModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if er := tx.Where("maintenance_id = ?", maintenanceID).First(&order).Error; er != nil {
			return er
		}
		if order.MaintenanceStatus != m.MaintenanceInProgress {
			return ErrNotInProgress
		}

		now := time.Now()
		order.MaintenanceStatus = m.MaintenanceCompleted
		order.MaintenanceResolution = &resolution
		order.MaintenanceCost = cost
		order.MaintenanceCompletedAt = &now
		if er := tx.Save(&order).Error; er != nil {
			return er
		}

		newStatus := inventoryModel.AssetOperational
		if !assetOperational {
			newStatus = inventoryModel.AssetOutOfService
		}
		return tx.Model(&inventoryModel.AssetModel{}).
			Where("asset_id = ?", order.MaintenanceAssetID).
			Update("asset_status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Abort descarta una orden en curso y regresa el activo a operativo.
func Abort(ctx context.Context, db *gorm.DB, maintenanceID uuid.UUID) (*m.MaintenanceModel, error) {
	var order m.MaintenanceModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if er := tx.Where("maintenance_id = ?", maintenanceID).First(&order).Error; er != nil {
			return er
		}
		if order.MaintenanceStatus != m.MaintenanceInProgress {
			return ErrNotInProgress
		}
		order.MaintenanceStatus = m.MaintenanceAborted
		if er := tx.Save(&order).Error; er != nil {
			return er
		}
		return tx.Model(&inventoryModel.AssetModel{}).
			Where("asset_id = ?", order.MaintenanceAssetID).
			Update("asset_status", inventoryModel.AssetOperational).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
