// file: internals/features/access/model/access_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	clientModel "migym_backend/internals/features/clients/model"
)

type AccessResult string

const (
	AccessGranted AccessResult = "permitido"
	AccessDenied  AccessResult = "denegado"
)

type AccessDenialReason string

const (
	DenialClientNotFound  AccessDenialReason = "cliente_no_encontrado"
	DenialClientInactive  AccessDenialReason = "cliente_inactivo"
	DenialNoSubscription  AccessDenialReason = "sin_suscripcion_vigente"
	DenialSiteNotCovered  AccessDenialReason = "sede_fuera_de_plan"
	DenialSiteInactive    AccessDenialReason = "sede_inactiva"
	DenialOutsideSchedule AccessDenialReason = "fuera_de_horario"
)

/* =========================
   Bitácora de accesos (torniquete / recepción)
========================= */

type AccessLogModel struct {
	AccessLogID uuid.UUID `json:"access_log_id" gorm:"column:access_log_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AccessLogClientID *uuid.UUID               `json:"access_log_client_id" gorm:"column:access_log_client_id;type:uuid;index"`
	Client            *clientModel.ClientModel `json:"client,omitempty" gorm:"foreignKey:AccessLogClientID;references:ClientID"`

	AccessLogSiteID uuid.UUID `json:"access_log_site_id" gorm:"column:access_log_site_id;type:uuid;not null;index"`

	AccessLogSearchTerm string              `json:"access_log_search_term" gorm:"column:access_log_search_term;type:varchar(200);not null"`
	AccessLogResult     AccessResult        `json:"access_log_result" gorm:"column:access_log_result;type:varchar(12);not null;index"`
	AccessLogReason     *AccessDenialReason `json:"access_log_reason" gorm:"column:access_log_reason;type:varchar(40)"`

	AccessLogAt time.Time `json:"access_log_at" gorm:"column:access_log_at;autoCreateTime;index"`
}

func (AccessLogModel) TableName() string { return "access_logs" }
