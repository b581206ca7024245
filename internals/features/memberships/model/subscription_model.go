// file: internals/features/memberships/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	clientModel "migym_backend/internals/features/clients/model"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "activa"
	SubscriptionSuspended SubscriptionStatus = "suspendida"
	SubscriptionCancelled SubscriptionStatus = "cancelada"
	SubscriptionExpired   SubscriptionStatus = "vencida"
)

/* =========================
   Model: SubscriptionModel (Suscripción)
========================= */

type SubscriptionModel struct {
	SubscriptionID uuid.UUID `json:"subscription_id" gorm:"column:subscription_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SubscriptionClientID uuid.UUID                `json:"subscription_client_id" gorm:"column:subscription_client_id;type:uuid;not null;index"`
	Client               *clientModel.ClientModel `json:"client,omitempty" gorm:"foreignKey:SubscriptionClientID;references:ClientID;constraint:OnDelete:CASCADE"`

	SubscriptionPlanID uuid.UUID            `json:"subscription_plan_id" gorm:"column:subscription_plan_id;type:uuid;not null;index"`
	Plan               *MembershipPlanModel `json:"plan,omitempty" gorm:"foreignKey:SubscriptionPlanID;references:MembershipPlanID"`

	SubscriptionStartDate time.Time `json:"subscription_start_date" gorm:"column:subscription_start_date;type:date;not null"`
	SubscriptionEndDate   time.Time `json:"subscription_end_date"   gorm:"column:subscription_end_date;type:date;not null"`

	SubscriptionStatus SubscriptionStatus `json:"subscription_status" gorm:"column:subscription_status;type:varchar(20);not null;default:'activa';index"`

	SubscriptionCreatedAt time.Time      `json:"subscription_created_at" gorm:"column:subscription_created_at;autoCreateTime"`
	SubscriptionUpdatedAt time.Time      `json:"subscription_updated_at" gorm:"column:subscription_updated_at;autoUpdateTime"`
	SubscriptionDeletedAt gorm.DeletedAt `json:"subscription_deleted_at" gorm:"column:subscription_deleted_at;index"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }

// IsValidOn comprueba estado activo y que la fecha caiga dentro del
// rango [start, end] inclusive.
func (s *SubscriptionModel) IsValidOn(day time.Time) bool {
	if s.SubscriptionStatus != SubscriptionActive {
		return false
	}
	d := day.Truncate(24 * time.Hour)
	start := s.SubscriptionStartDate.Truncate(24 * time.Hour)
	end := s.SubscriptionEndDate.Truncate(24 * time.Hour)
	return !d.Before(start) && !d.After(end)
}
