package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GoogleID  string         `gorm:"uniqueIndex;not null" json:"-"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Name      string         `json:"name"`
	Picture   string         `json:"picture,omitempty"`
	Profile   datatypes.JSON `gorm:"type:jsonb" json:"-"`
	// Google refresh token, encrypted with config.Encrypt before storage.
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
