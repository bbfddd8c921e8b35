package completion

import (
	"time"

	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/dates"
	"github.com/freddykhant/northstar/internal/habit"
	"github.com/freddykhant/northstar/internal/user"
)

// CompletionEvent asserts that a habit was done by a user on a calendar
// date. Its presence or absence is the sole source of truth for "was
// this habit done on this day" — there is no status column to update.
//
// The composite unique index is the load-bearing constraint: at most
// one event may ever exist per (habit, date, user) cell, and the
// database enforces it so racing toggles cannot double-insert.
type CompletionEvent struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	HabitID       uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_completion_cell" json:"habit_id"`
	CompletedDate dates.Date  `gorm:"not null;uniqueIndex:idx_completion_cell" json:"completed_date"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_completion_cell;index" json:"user_id"`
	Habit         habit.Habit `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE;" json:"-"`
	User          user.User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
}
