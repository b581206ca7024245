// file: internals/features/maintenance/dto/maintenance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "migym_backend/internals/features/maintenance/model"
)

type MaintenanceCreateRequest struct {
	AssetID      uuid.UUID         `json:"asset_id" validate:"required"`
	Kind         m.MaintenanceKind `json:"kind"     validate:"required,oneof=preventivo correctivo"`
	Description  string            `json:"description" validate:"required,min=1"`
	ScheduledFor *time.Time        `json:"scheduled_for"`
}

func (r *MaintenanceCreateRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
}

func (r MaintenanceCreateRequest) ToModel() *m.MaintenanceModel {
	return &m.MaintenanceModel{
		MaintenanceAssetID:      r.AssetID,
		MaintenanceKind:         r.Kind,
		MaintenanceStatus:       m.MaintenancePlanned,
		MaintenanceDescription:  r.Description,
		MaintenanceScheduledFor: r.ScheduledFor,
	}
}

type MaintenanceCompleteRequest struct {
	Resolution string   `json:"resolution" validate:"required,min=1"`
	Cost       *float64 `json:"cost" validate:"omitempty,min=0"`
	// el activo quedó reparado o hay que sacarlo de servicio
	AssetOperational bool `json:"asset_operational"`
}
