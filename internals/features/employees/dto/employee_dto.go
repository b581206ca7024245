// file: internals/features/employees/dto/employee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "migym_backend/internals/features/employees/model"
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

/* ----------------- CREATE ----------------- */

type EmployeeCreateRequest struct {
	// datos de la persona
	FirstName string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string     `json:"last_name"  validate:"required,min=1,max=100"`
	Email     string     `json:"email"      validate:"required,email,max=160"`
	Phone     *string    `json:"phone"      validate:"omitempty,max=30"`
	BirthDate *time.Time `json:"birth_date"`

	// datos del empleado
	SiteID   uuid.UUID `json:"site_id"   validate:"required"`
	Position string    `json:"position"  validate:"required,min=1,max=80"`
	Salary   float64   `json:"salary"    validate:"required,min=0"`
	HireDate time.Time `json:"hire_date" validate:"required"`
}

func (r *EmployeeCreateRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = trimPtr(r.Phone)
	r.Position = strings.TrimSpace(r.Position)
}

func (r EmployeeCreateRequest) ToPersonModel() *userModel.PersonModel {
	return &userModel.PersonModel{
		PersonFirstName: r.FirstName,
		PersonLastName:  r.LastName,
		PersonEmail:     r.Email,
		PersonPhone:     r.Phone,
		PersonBirthDate: r.BirthDate,
	}
}

func (r EmployeeCreateRequest) ToModel(personID uuid.UUID) *m.EmployeeModel {
	return &m.EmployeeModel{
		EmployeePersonID: personID,
		EmployeeSiteID:   r.SiteID,
		EmployeePosition: r.Position,
		EmployeeSalary:   r.Salary,
		EmployeeHireDate: r.HireDate,
		EmployeeIsActive: true,
	}
}

/* ----------------- UPDATE (PATCH, pointer-based) ----------------- */

type EmployeeUpdateRequest struct {
	SiteID   *uuid.UUID `json:"site_id"`
	Position *string    `json:"position" validate:"omitempty,min=1,max=80"`
	Salary   *float64   `json:"salary"   validate:"omitempty,min=0"`
	HireDate *time.Time `json:"hire_date"`
	IsActive *bool      `json:"is_active"`
}

// Apply copia solo los campos presentes: un PATCH con {"salary": ...}
// no toca position ni el resto.
func (r EmployeeUpdateRequest) Apply(e *m.EmployeeModel) {
	if r.SiteID != nil {
		e.EmployeeSiteID = *r.SiteID
	}
	if r.Position != nil {
		e.EmployeePosition = strings.TrimSpace(*r.Position)
	}
	if r.Salary != nil {
		e.EmployeeSalary = *r.Salary
	}
	if r.HireDate != nil {
		e.EmployeeHireDate = *r.HireDate
	}
	if r.IsActive != nil {
		e.EmployeeIsActive = *r.IsActive
	}
	e.EmployeeUpdatedAt = time.Now()
}

/* ----------------- TRAINER ----------------- */

type TrainerCreateRequest struct {
	EmployeeID     uuid.UUID `json:"employee_id" validate:"required"`
	Specialty      string    `json:"specialty"   validate:"required,min=1,max=120"`
	Certifications []string  `json:"certifications"`
}

func (r *TrainerCreateRequest) Normalize() {
	r.Specialty = strings.TrimSpace(r.Specialty)
}

type TrainerUpdateRequest struct {
	Specialty      *string   `json:"specialty" validate:"omitempty,min=1,max=120"`
	Certifications *[]string `json:"certifications"`
	IsActive       *bool     `json:"is_active"`
}

func (r TrainerUpdateRequest) Apply(t *m.TrainerModel) {
	if r.Specialty != nil {
		t.TrainerSpecialty = strings.TrimSpace(*r.Specialty)
	}
	if r.Certifications != nil {
		t.TrainerCertifications = *r.Certifications
	}
	if r.IsActive != nil {
		t.TrainerIsActive = *r.IsActive
	}
	t.TrainerUpdatedAt = time.Now()
}
