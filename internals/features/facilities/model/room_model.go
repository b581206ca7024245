// file: internals/features/facilities/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: RoomModel (Espacio)
========================= */

type RoomKind string

const (
	RoomStudio     RoomKind = "studio"
	RoomWeightArea RoomKind = "weight_area"
	RoomPool       RoomKind = "pool"
	RoomCourt      RoomKind = "court"
	RoomOther      RoomKind = "other"
)

type RoomModel struct {
	RoomID uuid.UUID `json:"room_id" gorm:"column:room_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	RoomSiteID uuid.UUID  `json:"room_site_id" gorm:"column:room_site_id;type:uuid;not null;index"`
	Site       *SiteModel `json:"site,omitempty" gorm:"foreignKey:RoomSiteID;references:SiteID;constraint:OnDelete:CASCADE"`

	RoomName     string   `json:"room_name"     gorm:"column:room_name;type:varchar(120);not null"`
	RoomKind     RoomKind `json:"room_kind"     gorm:"column:room_kind;type:varchar(30);not null;default:'other'"`
	RoomCapacity int      `json:"room_capacity" gorm:"column:room_capacity;not null;default:0"`

	RoomIsActive bool `json:"room_is_active" gorm:"column:room_is_active;not null;default:true"`

	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string { return "rooms" }

/* =========================
   Asignación entrenador ↔ espacio
   Consultada por la validación de horarios.
========================= */

type TrainerRoomAssignmentModel struct {
	TrainerRoomID        uuid.UUID `json:"trainer_room_id" gorm:"column:trainer_room_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TrainerRoomTrainerID uuid.UUID `json:"trainer_room_trainer_id" gorm:"column:trainer_room_trainer_id;type:uuid;not null;uniqueIndex:uq_trainer_rooms,priority:1"`
	TrainerRoomRoomID    uuid.UUID `json:"trainer_room_room_id" gorm:"column:trainer_room_room_id;type:uuid;not null;uniqueIndex:uq_trainer_rooms,priority:2"`

	Room *RoomModel `json:"room,omitempty" gorm:"foreignKey:TrainerRoomRoomID;references:RoomID;constraint:OnDelete:CASCADE"`

	TrainerRoomCreatedAt time.Time `json:"trainer_room_created_at" gorm:"column:trainer_room_created_at;autoCreateTime"`
}

func (TrainerRoomAssignmentModel) TableName() string { return "trainer_room_assignments" }
