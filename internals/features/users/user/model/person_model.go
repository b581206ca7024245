// file: internals/features/users/user/model/person_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: PersonModel (Persona)
   Compartida por empleados y clientes.
========================= */

type PersonModel struct {
	PersonID uuid.UUID `json:"person_id" gorm:"column:person_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	PersonFirstName string `json:"person_first_name" gorm:"column:person_first_name;type:varchar(100);not null"`
	PersonLastName  string `json:"person_last_name"  gorm:"column:person_last_name;type:varchar(100);not null"`

	PersonEmail string  `json:"person_email" gorm:"column:person_email;type:varchar(160);not null;uniqueIndex:uq_persons_email"`
	PersonPhone *string `json:"person_phone" gorm:"column:person_phone;type:varchar(30)"`

	PersonBirthDate *time.Time `json:"person_birth_date" gorm:"column:person_birth_date;type:date"`
	PersonAddress   *string    `json:"person_address"    gorm:"column:person_address;type:text"`

	PersonCreatedAt time.Time      `json:"person_created_at" gorm:"column:person_created_at;autoCreateTime"`
	PersonUpdatedAt time.Time      `json:"person_updated_at" gorm:"column:person_updated_at;autoUpdateTime"`
	PersonDeletedAt gorm.DeletedAt `json:"person_deleted_at" gorm:"column:person_deleted_at;index"`
}

func (PersonModel) TableName() string { return "persons" }

// FullName arma el nombre completo para búsquedas y respuestas.
func (p *PersonModel) FullName() string {
	return p.PersonFirstName + " " + p.PersonLastName
}
