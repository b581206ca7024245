// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist guarda access tokens invalidados por logout hasta que expiran.
type TokenBlacklist struct {
	ID        uuid.UUID      `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Token     string         `json:"-" gorm:"column:token;type:text;not null;index"`
	ExpiredAt time.Time      `json:"expired_at" gorm:"column:expired_at;not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"column:deleted_at;index"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
