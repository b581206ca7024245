// file: internals/features/scheduling/activity/model/activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: ActivityTypeModel (tipo de clase: spinning, yoga...)
========================= */

type ActivityTypeModel struct {
	ActivityTypeID uuid.UUID `json:"activity_type_id" gorm:"column:activity_type_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ActivityTypeName        string  `json:"activity_type_name" gorm:"column:activity_type_name;type:varchar(120);not null;uniqueIndex:uq_activity_types_name"`
	ActivityTypeDescription *string `json:"activity_type_description" gorm:"column:activity_type_description;type:text"`

	// duración de referencia en minutos, informativa
	ActivityTypeDefaultDurationMin *int `json:"activity_type_default_duration_min" gorm:"column:activity_type_default_duration_min"`

	// color hex para el calendario del front (#a1b2c3)
	ActivityTypeColor *string `json:"activity_type_color" gorm:"column:activity_type_color;type:varchar(7)"`

	ActivityTypeIsActive bool `json:"activity_type_is_active" gorm:"column:activity_type_is_active;not null;default:true"`

	ActivityTypeCreatedAt time.Time      `json:"activity_type_created_at" gorm:"column:activity_type_created_at;autoCreateTime"`
	ActivityTypeUpdatedAt time.Time      `json:"activity_type_updated_at" gorm:"column:activity_type_updated_at;autoUpdateTime"`
	ActivityTypeDeletedAt gorm.DeletedAt `json:"activity_type_deleted_at" gorm:"column:activity_type_deleted_at;index"`
}

func (ActivityTypeModel) TableName() string { return "activity_types" }
