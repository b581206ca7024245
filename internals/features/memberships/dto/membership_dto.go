// file: internals/features/memberships/dto/membership_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "migym_backend/internals/features/memberships/model"
)

/* ----------------- PLANES ----------------- */

type PlanCreateRequest struct {
	Name         string         `json:"name"          validate:"required,min=1,max=120"`
	Description  *string        `json:"description"`
	Price        float64        `json:"price"         validate:"required,min=0"`
	DurationDays int            `json:"duration_days" validate:"required,min=1"`
	AllSites     bool           `json:"all_sites"`
	SiteIDs      []uuid.UUID    `json:"site_ids"`
	Features     []string       `json:"features"`
	Metadata     datatypes.JSON `json:"metadata"`
}

func (r *PlanCreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r PlanCreateRequest) ToModel() *m.MembershipPlanModel {
	return &m.MembershipPlanModel{
		MembershipPlanName:         r.Name,
		MembershipPlanDescription:  r.Description,
		MembershipPlanPrice:        r.Price,
		MembershipPlanDurationDays: r.DurationDays,
		MembershipPlanAllSites:     r.AllSites,
		MembershipPlanFeatures:     r.Features,
		MembershipPlanMetadata:     r.Metadata,
		MembershipPlanIsActive:     true,
	}
}

type PlanUpdateRequest struct {
	Name         *string         `json:"name"          validate:"omitempty,min=1,max=120"`
	Description  *string         `json:"description"`
	Price        *float64        `json:"price"         validate:"omitempty,min=0"`
	DurationDays *int            `json:"duration_days" validate:"omitempty,min=1"`
	AllSites     *bool           `json:"all_sites"`
	SiteIDs      *[]uuid.UUID    `json:"site_ids"`
	Features     *[]string       `json:"features"`
	Metadata     *datatypes.JSON `json:"metadata"`
	IsActive     *bool           `json:"is_active"`
}

func (r PlanUpdateRequest) Apply(p *m.MembershipPlanModel) {
	if r.Name != nil {
		p.MembershipPlanName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		p.MembershipPlanDescription = r.Description
	}
	if r.Price != nil {
		p.MembershipPlanPrice = *r.Price
	}
	if r.DurationDays != nil {
		p.MembershipPlanDurationDays = *r.DurationDays
	}
	if r.AllSites != nil {
		p.MembershipPlanAllSites = *r.AllSites
	}
	if r.Features != nil {
		p.MembershipPlanFeatures = *r.Features
	}
	if r.Metadata != nil {
		p.MembershipPlanMetadata = *r.Metadata
	}
	if r.IsActive != nil {
		p.MembershipPlanIsActive = *r.IsActive
	}
	p.MembershipPlanUpdatedAt = time.Now()
}

/* ----------------- SUSCRIPCIONES ----------------- */

type SubscriptionCreateRequest struct {
	ClientID  uuid.UUID  `json:"client_id"  validate:"required"`
	PlanID    uuid.UUID  `json:"plan_id"    validate:"required"`
	StartDate *time.Time `json:"start_date"`
}

type SubscriptionChangeStatusRequest struct {
	Status m.SubscriptionStatus `json:"status" validate:"required,oneof=activa suspendida cancelada vencida"`
}
