// file: internals/features/facilities/dto/facility_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "migym_backend/internals/features/facilities/model"
)

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

/* =========================================================
   SITE (Sede)
========================================================= */

type SiteCreateRequest struct {
	SiteName    string  `json:"site_name"    validate:"required,min=1,max=120"`
	SiteAddress string  `json:"site_address" validate:"required"`
	SitePhone   *string `json:"site_phone"   validate:"omitempty,max=30"`

	SiteOpeningTime *string `json:"site_opening_time"`
	SiteClosingTime *string `json:"site_closing_time"`
}

func (r *SiteCreateRequest) Normalize() {
	r.SiteName = strings.TrimSpace(r.SiteName)
	r.SiteAddress = strings.TrimSpace(r.SiteAddress)
	r.SitePhone = trimPtr(r.SitePhone)
	r.SiteOpeningTime = trimPtr(r.SiteOpeningTime)
	r.SiteClosingTime = trimPtr(r.SiteClosingTime)
}

func (r SiteCreateRequest) ToModel() *m.SiteModel {
	return &m.SiteModel{
		SiteName:        r.SiteName,
		SiteAddress:     r.SiteAddress,
		SitePhone:       r.SitePhone,
		SiteOpeningTime: r.SiteOpeningTime,
		SiteClosingTime: r.SiteClosingTime,
		SiteIsActive:    true,
	}
}

type SiteUpdateRequest struct {
	SiteName        *string `json:"site_name"    validate:"omitempty,min=1,max=120"`
	SiteAddress     *string `json:"site_address"`
	SitePhone       *string `json:"site_phone"   validate:"omitempty,max=30"`
	SiteOpeningTime *string `json:"site_opening_time"`
	SiteClosingTime *string `json:"site_closing_time"`
}

func (r SiteUpdateRequest) Apply(s *m.SiteModel) {
	if r.SiteName != nil {
		s.SiteName = strings.TrimSpace(*r.SiteName)
	}
	if r.SiteAddress != nil {
		s.SiteAddress = strings.TrimSpace(*r.SiteAddress)
	}
	if r.SitePhone != nil {
		s.SitePhone = trimPtr(r.SitePhone)
	}
	if r.SiteOpeningTime != nil {
		s.SiteOpeningTime = trimPtr(r.SiteOpeningTime)
	}
	if r.SiteClosingTime != nil {
		s.SiteClosingTime = trimPtr(r.SiteClosingTime)
	}
	s.SiteUpdatedAt = time.Now()
}

/* =========================================================
   ROOM (Espacio)
========================================================= */

type RoomCreateRequest struct {
	RoomSiteID   uuid.UUID `json:"room_site_id" validate:"required"`
	RoomName     string    `json:"room_name"    validate:"required,min=1,max=120"`
	RoomKind     *string   `json:"room_kind"`
	RoomCapacity *int      `json:"room_capacity" validate:"omitempty,min=0"`
}

func (r *RoomCreateRequest) Normalize() {
	r.RoomName = strings.TrimSpace(r.RoomName)
	if r.RoomKind != nil {
		v := strings.ToLower(strings.TrimSpace(*r.RoomKind))
		r.RoomKind = &v
	}
}

func (r RoomCreateRequest) ToModel() *m.RoomModel {
	room := &m.RoomModel{
		RoomSiteID:   r.RoomSiteID,
		RoomName:     r.RoomName,
		RoomKind:     m.RoomOther,
		RoomIsActive: true,
	}
	if r.RoomKind != nil {
		room.RoomKind = m.RoomKind(*r.RoomKind)
	}
	if r.RoomCapacity != nil {
		room.RoomCapacity = *r.RoomCapacity
	}
	return room
}

type RoomUpdateRequest struct {
	RoomName     *string `json:"room_name" validate:"omitempty,min=1,max=120"`
	RoomKind     *string `json:"room_kind"`
	RoomCapacity *int    `json:"room_capacity" validate:"omitempty,min=0"`
}

func (r RoomUpdateRequest) Apply(room *m.RoomModel) {
	if r.RoomName != nil {
		room.RoomName = strings.TrimSpace(*r.RoomName)
	}
	if r.RoomKind != nil {
		room.RoomKind = m.RoomKind(strings.ToLower(strings.TrimSpace(*r.RoomKind)))
	}
	if r.RoomCapacity != nil {
		room.RoomCapacity = *r.RoomCapacity
	}
	room.RoomUpdatedAt = time.Now()
}

/* =========================================================
   TRAINER ↔ ROOM
========================================================= */

type TrainerRoomAssignRequest struct {
	TrainerID uuid.UUID `json:"trainer_id" validate:"required"`
	RoomID    uuid.UUID `json:"room_id"    validate:"required"`
}
