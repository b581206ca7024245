// file: internals/features/clients/dto/client_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "migym_backend/internals/features/clients/model"
	userModel "migym_backend/internals/features/users/user/model"
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

/* ----------------- CREATE (alta en recepción) ----------------- */

type ClientCreateRequest struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string     `json:"last_name"  validate:"required,min=1,max=100"`
	Email     string     `json:"email"      validate:"required,email,max=160"`
	Phone     *string    `json:"phone"      validate:"omitempty,max=30"`
	BirthDate *time.Time `json:"birth_date"`
	Address   *string    `json:"address"    validate:"omitempty,max=255"`

	HomeSiteID            *uuid.UUID `json:"home_site_id"`
	EmergencyContactName  *string    `json:"emergency_contact_name"  validate:"omitempty,max=160"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone" validate:"omitempty,max=30"`
	MedicalNotes          *string    `json:"medical_notes"`
}

func (r *ClientCreateRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = trimPtr(r.Phone)
	r.Address = trimPtr(r.Address)
	r.EmergencyContactName = trimPtr(r.EmergencyContactName)
	r.EmergencyContactPhone = trimPtr(r.EmergencyContactPhone)
}

func (r ClientCreateRequest) ToPersonModel() *userModel.PersonModel {
	return &userModel.PersonModel{
		PersonFirstName: r.FirstName,
		PersonLastName:  r.LastName,
		PersonEmail:     r.Email,
		PersonPhone:     r.Phone,
		PersonBirthDate: r.BirthDate,
		PersonAddress:   r.Address,
	}
}

func (r ClientCreateRequest) ToModel(personID uuid.UUID) *m.ClientModel {
	return &m.ClientModel{
		ClientPersonID:              personID,
		ClientHomeSiteID:            r.HomeSiteID,
		ClientEmergencyContactName:  r.EmergencyContactName,
		ClientEmergencyContactPhone: r.EmergencyContactPhone,
		ClientMedicalNotes:          r.MedicalNotes,
		ClientIsActive:              true,
	}
}

/* ----------------- SELF REGISTER (cliente con cuenta) ----------------- */

type ClientSelfRegisterRequest struct {
	ClientCreateRequest
	Password string `json:"password" validate:"required,min=8,max=72"`
}

/* ----------------- UPDATE (PATCH) ----------------- */

type ClientUpdateRequest struct {
	HomeSiteID            *uuid.UUID `json:"home_site_id"`
	EmergencyContactName  *string    `json:"emergency_contact_name"  validate:"omitempty,max=160"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone" validate:"omitempty,max=30"`
	MedicalNotes          *string    `json:"medical_notes"`
	IsActive              *bool      `json:"is_active"`
}

func (r ClientUpdateRequest) Apply(cl *m.ClientModel) {
	if r.HomeSiteID != nil {
		cl.ClientHomeSiteID = r.HomeSiteID
	}
	if r.EmergencyContactName != nil {
		cl.ClientEmergencyContactName = trimPtr(r.EmergencyContactName)
	}
	if r.EmergencyContactPhone != nil {
		cl.ClientEmergencyContactPhone = trimPtr(r.EmergencyContactPhone)
	}
	if r.MedicalNotes != nil {
		cl.ClientMedicalNotes = r.MedicalNotes
	}
	if r.IsActive != nil {
		cl.ClientIsActive = *r.IsActive
	}
	cl.ClientUpdatedAt = time.Now()
}
