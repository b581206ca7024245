// file: internals/features/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	userModel "migym_backend/internals/features/users/user/model"
)

/* =========================
   Model: EmployeeModel (Empleado)
========================= */

type EmployeeModel struct {
	EmployeeID uuid.UUID `json:"employee_id" gorm:"column:employee_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	EmployeePersonID uuid.UUID              `json:"employee_person_id" gorm:"column:employee_person_id;type:uuid;not null;uniqueIndex:uq_employees_person"`
	Person           *userModel.PersonModel `json:"person,omitempty" gorm:"foreignKey:EmployeePersonID;references:PersonID;constraint:OnDelete:CASCADE"`

	EmployeeSiteID uuid.UUID `json:"employee_site_id" gorm:"column:employee_site_id;type:uuid;not null;index"`

	EmployeePosition string    `json:"employee_position" gorm:"column:employee_position;type:varchar(80);not null"`
	EmployeeSalary   float64   `json:"employee_salary"   gorm:"column:employee_salary;type:numeric(12,2);not null;default:0"`
	EmployeeHireDate time.Time `json:"employee_hire_date" gorm:"column:employee_hire_date;type:date;not null"`

	EmployeeIsActive bool `json:"employee_is_active" gorm:"column:employee_is_active;not null;default:true"`

	EmployeeCreatedAt time.Time      `json:"employee_created_at" gorm:"column:employee_created_at;autoCreateTime"`
	EmployeeUpdatedAt time.Time      `json:"employee_updated_at" gorm:"column:employee_updated_at;autoUpdateTime"`
	EmployeeDeletedAt gorm.DeletedAt `json:"employee_deleted_at" gorm:"column:employee_deleted_at;index"`
}

func (EmployeeModel) TableName() string { return "employees" }

/* =========================
   Especialización: entrenador
========================= */

type TrainerModel struct {
	TrainerID uuid.UUID `json:"trainer_id" gorm:"column:trainer_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	TrainerEmployeeID uuid.UUID      `json:"trainer_employee_id" gorm:"column:trainer_employee_id;type:uuid;not null;uniqueIndex:uq_trainers_employee"`
	Employee          *EmployeeModel `json:"employee,omitempty" gorm:"foreignKey:TrainerEmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE"`

	TrainerSpecialty      string         `json:"trainer_specialty" gorm:"column:trainer_specialty;type:varchar(120);not null"`
	TrainerCertifications pq.StringArray `json:"trainer_certifications" gorm:"column:trainer_certifications;type:text[]"`

	TrainerIsActive bool `json:"trainer_is_active" gorm:"column:trainer_is_active;not null;default:true"`

	TrainerCreatedAt time.Time      `json:"trainer_created_at" gorm:"column:trainer_created_at;autoCreateTime"`
	TrainerUpdatedAt time.Time      `json:"trainer_updated_at" gorm:"column:trainer_updated_at;autoUpdateTime"`
	TrainerDeletedAt gorm.DeletedAt `json:"trainer_deleted_at" gorm:"column:trainer_deleted_at;index"`
}

func (TrainerModel) TableName() string { return "trainers" }

/* =========================
   Documentos del empleado (en disco local)
========================= */

type EmployeeDocumentKind string

const (
	DocIDCard         EmployeeDocumentKind = "id_card"
	DocProofOfAddress EmployeeDocumentKind = "proof_of_address"
	DocCertificate    EmployeeDocumentKind = "certificate"
	DocPhoto          EmployeeDocumentKind = "photo"
)

type EmployeeDocumentModel struct {
	EmployeeDocumentID         uuid.UUID            `json:"employee_document_id" gorm:"column:employee_document_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeDocumentEmployeeID uuid.UUID            `json:"employee_document_employee_id" gorm:"column:employee_document_employee_id;type:uuid;not null;index"`
	EmployeeDocumentKind       EmployeeDocumentKind `json:"employee_document_kind" gorm:"column:employee_document_kind;type:varchar(30);not null"`

	EmployeeDocumentPath         string `json:"employee_document_path" gorm:"column:employee_document_path;type:text;not null"`
	EmployeeDocumentOriginalName string `json:"employee_document_original_name" gorm:"column:employee_document_original_name;type:text;not null"`

	EmployeeDocumentCreatedAt time.Time `json:"employee_document_created_at" gorm:"column:employee_document_created_at;autoCreateTime"`
}

func (EmployeeDocumentModel) TableName() string { return "employee_documents" }
