// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: UserModel
========================= */

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	UserName  string `json:"user_name"  gorm:"column:user_name;type:varchar(80);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(160);not null;uniqueIndex:uq_users_email"`

	// hash bcrypt; nunca se serializa
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(120)"`

	// vínculo con la persona (empleado o cliente)
	UserPersonID *uuid.UUID   `json:"user_person_id" gorm:"column:user_person_id;type:uuid;index"`
	Person       *PersonModel `json:"person,omitempty" gorm:"foreignKey:UserPersonID;references:PersonID;constraint:OnDelete:CASCADE"`

	UserGoogleID *string `json:"-" gorm:"column:user_google_id;type:varchar(64);index"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
