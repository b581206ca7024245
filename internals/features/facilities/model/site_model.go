// file: internals/features/facilities/model/site_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: SiteModel (Sede)
========================= */

type SiteModel struct {
	SiteID uuid.UUID `json:"site_id" gorm:"column:site_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SiteName    string  `json:"site_name"    gorm:"column:site_name;type:varchar(120);not null"`
	SiteAddress string  `json:"site_address" gorm:"column:site_address;type:text;not null"`
	SitePhone   *string `json:"site_phone"   gorm:"column:site_phone;type:varchar(30)"`

	SiteOpeningTime *string `json:"site_opening_time" gorm:"column:site_opening_time;type:varchar(8)"` // "06:00"
	SiteClosingTime *string `json:"site_closing_time" gorm:"column:site_closing_time;type:varchar(8)"`

	SiteIsActive bool `json:"site_is_active" gorm:"column:site_is_active;not null;default:true"`

	SiteCreatedAt time.Time      `json:"site_created_at" gorm:"column:site_created_at;autoCreateTime"`
	SiteUpdatedAt time.Time      `json:"site_updated_at" gorm:"column:site_updated_at;autoUpdateTime"`
	SiteDeletedAt gorm.DeletedAt `json:"site_deleted_at" gorm:"column:site_deleted_at;index"`
}

func (SiteModel) TableName() string { return "sites" }
