// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	m "migym_backend/internals/features/users/user/model"
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

/* ----------------- UPDATE (PATCH, campos pointer) ----------------- */

type UserUpdateRequest struct {
	UserName     *string `json:"user_name"  validate:"omitempty,min=3,max=80"`
	UserEmail    *string `json:"user_email" validate:"omitempty,email,max=160"`
	UserIsActive *bool   `json:"user_is_active"`
}

func (r *UserUpdateRequest) Normalize() {
	r.UserName = trimPtr(r.UserName)
	if r.UserEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.UserEmail))
		r.UserEmail = &v
	}
}

// Apply copia solo los campos presentes.
func (r UserUpdateRequest) Apply(u *m.UserModel) {
	if r.UserName != nil {
		u.UserName = *r.UserName
	}
	if r.UserEmail != nil {
		u.UserEmail = *r.UserEmail
	}
	if r.UserIsActive != nil {
		u.UserIsActive = *r.UserIsActive
	}
	u.UserUpdatedAt = time.Now()
}

/* ----------------- PERSON UPDATE ----------------- */

type PersonUpdateRequest struct {
	PersonFirstName *string    `json:"person_first_name" validate:"omitempty,min=1,max=100"`
	PersonLastName  *string    `json:"person_last_name"  validate:"omitempty,min=1,max=100"`
	PersonPhone     *string    `json:"person_phone"      validate:"omitempty,max=30"`
	PersonAddress   *string    `json:"person_address"`
	PersonBirthDate *time.Time `json:"person_birth_date"`
}

func (r PersonUpdateRequest) Apply(p *m.PersonModel) {
	if r.PersonFirstName != nil {
		p.PersonFirstName = strings.TrimSpace(*r.PersonFirstName)
	}
	if r.PersonLastName != nil {
		p.PersonLastName = strings.TrimSpace(*r.PersonLastName)
	}
	if r.PersonPhone != nil {
		p.PersonPhone = trimPtr(r.PersonPhone)
	}
	if r.PersonAddress != nil {
		p.PersonAddress = trimPtr(r.PersonAddress)
	}
	if r.PersonBirthDate != nil {
		p.PersonBirthDate = r.PersonBirthDate
	}
	p.PersonUpdatedAt = time.Now()
}
