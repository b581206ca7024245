// file: internals/features/memberships/model/plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	facilityModel "migym_backend/internals/features/facilities/model"
)

/* =========================
   Model: MembershipPlanModel (Membresía)
========================= */

type MembershipPlanModel struct {
	MembershipPlanID uuid.UUID `json:"membership_plan_id" gorm:"column:membership_plan_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	MembershipPlanName        string  `json:"membership_plan_name" gorm:"column:membership_plan_name;type:varchar(120);not null;uniqueIndex:uq_membership_plans_name"`
	MembershipPlanDescription *string `json:"membership_plan_description" gorm:"column:membership_plan_description;type:text"`

	MembershipPlanPrice        float64 `json:"membership_plan_price" gorm:"column:membership_plan_price;type:numeric(12,2);not null"`
	MembershipPlanDurationDays int     `json:"membership_plan_duration_days" gorm:"column:membership_plan_duration_days;not null"`

	// AllSites=true ignora la tabla de unión y cubre todas las sedes
	MembershipPlanAllSites bool           `json:"membership_plan_all_sites" gorm:"column:membership_plan_all_sites;not null;default:false"`
	MembershipPlanFeatures pq.StringArray `json:"membership_plan_features" gorm:"column:membership_plan_features;type:text[]"`
	MembershipPlanMetadata datatypes.JSON `json:"membership_plan_metadata" gorm:"column:membership_plan_metadata;type:jsonb"`

	MembershipPlanIsActive bool `json:"membership_plan_is_active" gorm:"column:membership_plan_is_active;not null;default:true"`

	Sites []facilityModel.SiteModel `json:"sites,omitempty" gorm:"many2many:membership_plan_sites;joinForeignKey:MembershipPlanSitePlanID;joinReferences:MembershipPlanSiteSiteID"`

	MembershipPlanCreatedAt time.Time      `json:"membership_plan_created_at" gorm:"column:membership_plan_created_at;autoCreateTime"`
	MembershipPlanUpdatedAt time.Time      `json:"membership_plan_updated_at" gorm:"column:membership_plan_updated_at;autoUpdateTime"`
	MembershipPlanDeletedAt gorm.DeletedAt `json:"membership_plan_deleted_at" gorm:"column:membership_plan_deleted_at;index"`
}

func (MembershipPlanModel) TableName() string { return "membership_plans" }

// CoversSite indica si el plan da acceso a la sede (requiere Sites precargado
// cuando AllSites es false).
func (p *MembershipPlanModel) CoversSite(siteID uuid.UUID) bool {
	if p.MembershipPlanAllSites {
		return true
	}
	for _, s := range p.Sites {
		if s.SiteID == siteID {
			return true
		}
	}
	return false
}

/* =========================
   Unión plan ↔ sede
========================= */

type MembershipPlanSiteModel struct {
	MembershipPlanSitePlanID uuid.UUID `json:"membership_plan_site_plan_id" gorm:"column:membership_plan_site_plan_id;type:uuid;primaryKey"`
	MembershipPlanSiteSiteID uuid.UUID `json:"membership_plan_site_site_id" gorm:"column:membership_plan_site_site_id;type:uuid;primaryKey"`
}

func (MembershipPlanSiteModel) TableName() string { return "membership_plan_sites" }
