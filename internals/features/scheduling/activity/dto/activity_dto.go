// file: internals/features/scheduling/activity/dto/activity_dto.go
package dto

import (
	"strings"
	"time"

	m "migym_backend/internals/features/scheduling/activity/model"
)

type ActivityTypeCreateRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=120"`
	Description        *string `json:"description"`
	DefaultDurationMin *int    `json:"default_duration_min" validate:"omitempty,min=5,max=480"`
	Color              *string `json:"color" validate:"omitempty,hexcolor"`
}

func (r *ActivityTypeCreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r ActivityTypeCreateRequest) ToModel() *m.ActivityTypeModel {
	return &m.ActivityTypeModel{
		ActivityTypeName:               r.Name,
		ActivityTypeDescription:        r.Description,
		ActivityTypeDefaultDurationMin: r.DefaultDurationMin,
		ActivityTypeColor:              r.Color,
		ActivityTypeIsActive:           true,
	}
}

type ActivityTypeUpdateRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description        *string `json:"description"`
	DefaultDurationMin *int    `json:"default_duration_min" validate:"omitempty,min=5,max=480"`
	Color              *string `json:"color" validate:"omitempty,hexcolor"`
	IsActive           *bool   `json:"is_active"`
}

func (r ActivityTypeUpdateRequest) Apply(a *m.ActivityTypeModel) {
	if r.Name != nil {
		a.ActivityTypeName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		a.ActivityTypeDescription = r.Description
	}
	if r.DefaultDurationMin != nil {
		a.ActivityTypeDefaultDurationMin = r.DefaultDurationMin
	}
	if r.Color != nil {
		a.ActivityTypeColor = r.Color
	}
	if r.IsActive != nil {
		a.ActivityTypeIsActive = *r.IsActive
	}
	a.ActivityTypeUpdatedAt = time.Now()
}
