package habit

import (
	"time"

	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/user"
)

type Habit struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Category Category  `gorm:"type:varchar(8);not null" json:"category"`
	// IsActive is the soft-delete flag. Inactive habits drop out of the
	// daily checklist but their historical completions stay valid.
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
