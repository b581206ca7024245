// file: internals/features/clients/model/client_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "migym_backend/internals/features/users/user/model"
)

/* =========================
   Model: ClientModel (Cliente)
========================= */

type ClientModel struct {
	ClientID uuid.UUID `json:"client_id" gorm:"column:client_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ClientPersonID uuid.UUID              `json:"client_person_id" gorm:"column:client_person_id;type:uuid;not null;uniqueIndex:uq_clients_person"`
	Person         *userModel.PersonModel `json:"person,omitempty" gorm:"foreignKey:ClientPersonID;references:PersonID;constraint:OnDelete:CASCADE"`

	// sede preferida, informativa (la cobertura real la da la suscripción)
	ClientHomeSiteID *uuid.UUID `json:"client_home_site_id" gorm:"column:client_home_site_id;type:uuid;index"`

	ClientEmergencyContactName  *string `json:"client_emergency_contact_name"  gorm:"column:client_emergency_contact_name;type:varchar(160)"`
	ClientEmergencyContactPhone *string `json:"client_emergency_contact_phone" gorm:"column:client_emergency_contact_phone;type:varchar(30)"`
	ClientMedicalNotes          *string `json:"client_medical_notes"           gorm:"column:client_medical_notes;type:text"`

	ClientPhotoPath *string `json:"client_photo_path" gorm:"column:client_photo_path;type:text"`

	ClientIsActive bool `json:"client_is_active" gorm:"column:client_is_active;not null;default:true"`

	ClientCreatedAt time.Time      `json:"client_created_at" gorm:"column:client_created_at;autoCreateTime"`
	ClientUpdatedAt time.Time      `json:"client_updated_at" gorm:"column:client_updated_at;autoUpdateTime"`
	ClientDeletedAt gorm.DeletedAt `json:"client_deleted_at" gorm:"column:client_deleted_at;index"`
}

func (ClientModel) TableName() string { return "clients" }
