// file: internals/features/users/auth/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshTokenModel struct {
	ID     uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;not null;index"`

	// hash SHA-256 del refresh token, nunca el token en claro
	Token     []byte     `json:"-" gorm:"column:token;type:bytea;not null;uniqueIndex"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"column:expires_at;not null"`
	RevokedAt *time.Time `json:"revoked_at" gorm:"column:revoked_at"`

	UserAgent *string `json:"user_agent" gorm:"column:user_agent;type:text"`
	IP        *string `json:"ip" gorm:"column:ip;type:varchar(64)"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
